package ge

import (
	"fmt"

	"github.com/spartanadvise/advisor/core"
)

type (
	// Progress is one category's accumulated state.
	Progress struct {
		Earned      float64  `json:"earned"`
		Required    float64  `json:"required"`
		Courses     []string `json:"courses"`
		Waived      bool     `json:"waived"`
		WaivedUnits float64  `json:"waived_units"`
	}

	// Ledger tracks per-category unit progress for one reconciliation.
	// It lives for a single call and is never persisted.
	Ledger map[Category]*Progress

	// USProgress tracks the boolean institution requirements; they are
	// satisfied by flagged courses, not by units.
	USProgress struct {
		US1 bool `json:"us1"`
		US2 bool `json:"us2"`
		US3 bool `json:"us3"`
	}
)

// ledgerCategories are the unit-based categories the ledger tracks. US is
// deliberately absent: US1-US3 are boolean flags handled by USProgress.
var ledgerCategories = []Category{CatA, CatB, CatC, CatD, CatE, CatF, CatUpper, CatPE}

// NewLedger initializes every unit-based category at zero earned units.
func NewLedger() Ledger {
	l := make(Ledger, len(ledgerCategories))
	for _, cat := range ledgerCategories {
		l[cat] = &Progress{Required: RequiredUnits(cat), Courses: []string{}}
	}
	return l
}

// ComputeLedger folds classified GE courses and translated exam credits
// into a fresh ledger plus the merged institution-requirement flags.
// It is a pure function of its inputs: running it twice on the same lists
// yields identical ledgers.
func ComputeLedger(classified []ClassifiedCourse, translated []TranslationResult, log core.Logger) (Ledger, USProgress) {
	l := NewLedger()
	var us USProgress

	for _, cc := range classified {
		l.addEntry(cc.Code, cc.Areas, courseUnitFunc(cc.Units), log)
		us.merge(cc.US1, cc.US2, cc.US3)
	}
	for _, tr := range translated {
		l.addEntry(tr.CourseCode, tr.Areas, creditUnitFunc(tr.Units), log)
		us.merge(tr.US1, tr.US2, tr.US3)
	}
	return l, us
}

// addEntry credits one labeled entry to the category of each area it
// carries. The label is idempotent per category: a label already present
// is skipped entirely so unit counts cannot inflate when a mapping step
// runs twice downstream. A multi-area entry whose areas share one category
// (B2+B3 lab pairs) counts once there at its heaviest area weight, so the
// credited units do not depend on area order.
func (l Ledger) addEntry(label string, areas []AreaCode, units func(AreaCode) float64, log core.Logger) {
	best := make(map[Category]float64, len(areas))
	for _, area := range areas {
		cat, ok := CategoryOf(area)
		if !ok {
			if log != nil {
				log.Warn(fmt.Sprintf("ge: ignoring unknown area %q on %q", area, label))
			}
			continue
		}
		if _, tracked := l[cat]; !tracked {
			// US areas: flag-based, not unit-tracked.
			continue
		}
		if u, seen := best[cat]; !seen || units(area) > u {
			best[cat] = units(area)
		}
	}
	for _, cat := range ledgerCategories {
		u, ok := best[cat]
		if !ok {
			continue
		}
		prog := l[cat]
		if containsLabel(prog.Courses, label) {
			continue
		}
		prog.Courses = append(prog.Courses, label)
		prog.Earned += u
	}
}

// courseUnitFunc weighs a catalog course's per-area contribution: B3 lab
// rows weigh 1, everything else uses the catalog units (default 3).
func courseUnitFunc(units float64) func(AreaCode) float64 {
	return func(area AreaCode) float64 {
		if area == AreaB3 {
			return labUnitWeight
		}
		if units > 0 {
			return units
		}
		return defaultCourseUnits
	}
}

// creditUnitFunc weighs an exam credit by its granted units.
func creditUnitFunc(units float64) func(AreaCode) float64 {
	return func(AreaCode) float64 { return units }
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// Satisfied reports whether a category is complete. Category C additionally
// requires three distinct qualifying C1/C2 entries regardless of units.
func (l Ledger) Satisfied(cat Category) bool {
	prog, ok := l[cat]
	if !ok {
		return false
	}
	if prog.Waived {
		return true
	}
	if prog.Earned < prog.Required {
		return false
	}
	if cat == CatC && len(prog.Courses) < minCCourses {
		return false
	}
	return true
}

// StillNeeded lists unsatisfied categories in canonical order.
func (l Ledger) StillNeeded() []Category {
	needed := make([]Category, 0, len(ledgerCategories))
	for _, cat := range CategoryOrder {
		if _, ok := l[cat]; !ok {
			continue
		}
		if !l.Satisfied(cat) {
			needed = append(needed, cat)
		}
	}
	return needed
}

func (us *USProgress) merge(us1, us2, us3 bool) {
	us.US1 = us.US1 || us1
	us.US2 = us.US2 || us2
	us.US3 = us.US3 || us3
}

// Needed lists the unsatisfied institution-requirement flags.
func (us USProgress) Needed() []AreaCode {
	needed := make([]AreaCode, 0, 3)
	if !us.US1 {
		needed = append(needed, AreaUS1)
	}
	if !us.US2 {
		needed = append(needed, AreaUS2)
	}
	if !us.US3 {
		needed = append(needed, AreaUS3)
	}
	return needed
}
