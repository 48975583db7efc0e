package ge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/spartanadvise/advisor/core"
)

// lookupConcurrency bounds the reference-store fan-out per request.
const lookupConcurrency = 8

type (
	Service struct {
		repo Repository
		log  core.Logger
	}

	// APCredits reports the translation step.
	APCredits struct {
		Original   []string            `json:"original"`
		Translated []TranslationResult `json:"translated"`
		NotFound   []string            `json:"not_found"`
	}

	// Categorization reports the classification step.
	Categorization struct {
		GEClasses      []ClassifiedCourse `json:"ge_classes"`
		EverythingElse []string           `json:"everything_else"`
	}

	// Result is the full advising answer for one student.
	Result struct {
		RequestID       string         `json:"request_id"`
		ClassesTaken    []string       `json:"classes_taken"`
		APCredits       APCredits      `json:"ap_credits"`
		Categorization  Categorization `json:"categorization"`
		MajorExceptions WaiverResult   `json:"major_exceptions"`
		GEProgress      Ledger         `json:"ge_progress"`
		GEAreasNeeded   []Category     `json:"ge_areas_needed"`
		USProgress      USProgress     `json:"us_progress"`
		USAreasNeeded   []AreaCode     `json:"us_areas_needed"`
	}
)

func NewService(repo Repository, log core.Logger) *Service {
	if log == nil {
		log = core.NopLogger{}
	}
	return &Service{repo: repo, log: log}
}

// Reconcile turns a student's major, completed course list, and claimed
// exam credits into GE progress and still-needed categories.
//
// The classification, translation, and waiver lookups are independent
// reads, so they fan out concurrently and fan back in before the ledger
// step. Reference-store outages degrade per component (everything-other,
// everything-not-found, no-waivers); the call itself never fails because
// of them, so the advisor always gets some answer.
func (svc *Service) Reconcile(ctx context.Context, major string, classesTaken, apCredits []string) Result {
	reqID := uuid.NewString()
	svc.log.Debug(fmt.Sprintf("reconcile %s: major=%q courses=%d credits=%d", reqID, major, len(classesTaken), len(apCredits)))

	classified := make([]*ClassifiedCourse, len(classesTaken))
	translated := make([]*TranslationResult, len(apCredits))
	var waivers WaiverResult

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)

	for i, code := range classesTaken {
		i, code := i, code
		g.Go(func() error {
			if cc, err := svc.classifyOne(gctx, code); err == nil {
				classified[i] = &cc
			} else if errors.Cause(err) != ErrNotFound {
				svc.log.Error(fmt.Sprintf("reconcile %s: classifying %q: %v", reqID, code, err), err)
			}
			return nil
		})
	}
	for i, raw := range apCredits {
		i, raw := i, raw
		g.Go(func() error {
			credit := ParseExamScore(raw)
			if tr, err := svc.translateOne(gctx, credit); err == nil {
				translated[i] = &tr
			} else if errors.Cause(err) != ErrNotFound {
				svc.log.Error(fmt.Sprintf("reconcile %s: translating %q: %v", reqID, credit.Name, err), err)
			}
			return nil
		})
	}
	g.Go(func() error {
		waivers = svc.ResolveWaiver(gctx, major)
		return nil
	})
	_ = g.Wait() // lookups degrade internally; nothing to propagate

	// fan-in, preserving input order
	cat := Categorization{
		GEClasses:      make([]ClassifiedCourse, 0, len(classesTaken)),
		EverythingElse: make([]string, 0),
	}
	for i, cc := range classified {
		if cc != nil {
			cat.GEClasses = append(cat.GEClasses, *cc)
		} else {
			cat.EverythingElse = append(cat.EverythingElse, classesTaken[i])
		}
	}
	credits := APCredits{
		Original:   apCredits,
		Translated: make([]TranslationResult, 0, len(apCredits)),
		NotFound:   make([]string, 0),
	}
	for i, tr := range translated {
		if tr != nil {
			credits.Translated = append(credits.Translated, *tr)
		} else {
			credits.NotFound = append(credits.NotFound, ParseExamScore(apCredits[i]).Name)
		}
	}

	ledger, us := ComputeLedger(cat.GEClasses, credits.Translated, svc.log)
	ApplyWaivers(ledger, waivers.Tokens, svc.log)

	return Result{
		RequestID:       reqID,
		ClassesTaken:    classesTaken,
		APCredits:       credits,
		Categorization:  cat,
		MajorExceptions: waivers,
		GEProgress:      ledger,
		GEAreasNeeded:   ledger.StillNeeded(),
		USProgress:      us,
		USAreasNeeded:   us.Needed(),
	}
}
