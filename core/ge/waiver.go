package ge

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core"
)

// WaiverResult is a resolved program waiver. Matched is nil when no rule
// exists for the program; that is a valid outcome, not an error.
type WaiverResult struct {
	Matched *WaiverRule `json:"matched"`
	Tokens  []string    `json:"tokens"`
}

// partialDUnits is what the D1 token credits toward Area D's 6 required
// units (the AMS sequence rule).
const partialDUnits = 3

// ResolveWaiver looks up a program's GE exceptions: exact program name
// first, then a bidirectional substring match, first hit wins. A store
// outage degrades to no-waivers.
func (svc *Service) ResolveWaiver(ctx context.Context, major string) WaiverResult {
	rule, err := svc.repo.GetWaiver(ctx, major)
	if errors.Cause(err) == ErrNotFound {
		rule, err = svc.repo.SearchWaiver(ctx, major)
	}
	if err != nil {
		if errors.Cause(err) != ErrNotFound {
			svc.log.Error(fmt.Sprintf("resolving waiver for %q: %v", major, err), err)
		}
		return WaiverResult{Tokens: []string{}}
	}
	return WaiverResult{Matched: &rule, Tokens: rule.Tokens()}
}

// ApplyWaivers merges resolved waiver tokens into the ledger.
//
// Whole-category tokens (PE, D, F, ...) satisfy the category outright.
// Area tokens (A3, B2, R, S, V) credit a fixed per-area weight without full
// satisfaction. D1 is the one special partial rule: it credits exactly
// partialDUnits toward Area D; D drops out of "still needed" only once
// earned reaches required. The D1 token itself is never a ledger key, so
// nothing is removed for it literally.
func ApplyWaivers(l Ledger, tokens []string, log core.Logger) {
	for _, tok := range tokens {
		switch {
		case tok == "D1":
			prog := l[CatD]
			prog.Earned += partialDUnits
			prog.WaivedUnits += partialDUnits

		case l[Category(tok)] != nil:
			prog := l[Category(tok)]
			if delta := prog.Required - prog.Earned; delta > 0 {
				prog.WaivedUnits += delta
				prog.Earned = prog.Required
			}
			prog.Waived = true

		default:
			cat, ok := CategoryOf(AreaCode(tok))
			if !ok {
				if log != nil {
					log.Warn(fmt.Sprintf("ge: unknown waiver token %q, skipping", tok))
				}
				continue
			}
			prog, ok := l[cat]
			if !ok {
				continue
			}
			prog.Earned += areaWaiverUnits(AreaCode(tok))
			prog.WaivedUnits += areaWaiverUnits(AreaCode(tok))
		}
	}
}

// areaWaiverUnits is the credit a single waived area grants its category.
func areaWaiverUnits(area AreaCode) float64 {
	if area == AreaPE {
		return RequiredUnits(CatPE)
	}
	return 3
}
