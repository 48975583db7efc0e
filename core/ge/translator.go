package ge

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Translate maps claimed exam credits to their equivalent catalog courses.
// Lookup order per exam: exact name, then substring fallback; within the
// matching rows the achieved score picks the row (see BestForScore).
// Unmatched exams land in notFound. A reference-store outage degrades to
// everything-not-found; it never fails the call.
func (svc *Service) Translate(ctx context.Context, credits []ExamScore) (translated []TranslationResult, notFound []string) {
	translated = make([]TranslationResult, 0, len(credits))
	notFound = make([]string, 0)

	for _, credit := range credits {
		res, err := svc.translateOne(ctx, credit)
		if err != nil {
			if errors.Cause(err) != ErrNotFound {
				svc.log.Error(fmt.Sprintf("translating exam %q: %v", credit.Name, err), err)
			}
			notFound = append(notFound, credit.Name)
			continue
		}
		translated = append(translated, res)
	}
	return translated, notFound
}

func (svc *Service) translateOne(ctx context.Context, credit ExamScore) (TranslationResult, error) {
	rows, err := svc.repo.QueryExamCredits(ctx, credit.Name)
	if err != nil && errors.Cause(err) != ErrNotFound {
		return TranslationResult{}, errors.Wrap(err, "exact exam lookup")
	}
	if len(rows) == 0 {
		if rows, err = svc.repo.SearchExamCredits(ctx, credit.Name); err != nil && errors.Cause(err) != ErrNotFound {
			return TranslationResult{}, errors.Wrap(err, "substring exam lookup")
		}
	}

	row, ok := BestForScore(rows, credit.Score)
	if !ok {
		return TranslationResult{}, ErrNotFound
	}
	return TranslationResult{
		Exam:        credit.Name,
		CourseCode:  row.CourseCode,
		CourseTitle: row.CourseTitle,
		Areas:       row.SplitAreas(),
		Units:       row.UnitsGranted,
		US1:         row.US1,
		US2:         row.US2,
		US3:         row.US3,
		LabCredit:   row.LabCredit,
	}, nil
}
