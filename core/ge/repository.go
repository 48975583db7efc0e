package ge

import (
	"context"
	"errors"
)

var (
	// ErrNotFound signals a natural-key miss in the reference store.
	ErrNotFound = errors.New("reference row not found")
)

// Repository is read-only access to the GE reference tables. Lookups return
// ErrNotFound on a key miss; any other error means the store itself is
// unavailable and callers degrade to empty results.
type Repository interface {
	// GetCourse returns the catalog course for a code, merging all of its
	// area rows into Course.Areas.
	GetCourse(ctx context.Context, code string) (Course, error)
	// CoursesByArea lists catalog courses qualifying for one area.
	CoursesByArea(ctx context.Context, area AreaCode) ([]Course, error)

	// QueryExamCredits returns articulation rows matching an exam name
	// exactly, ordered by ascending MinScore.
	QueryExamCredits(ctx context.Context, exam string) ([]ExamCredit, error)
	// SearchExamCredits is the substring fallback: a stored name containing
	// the query, or the query containing a stored name, ordered by
	// ascending MinScore.
	SearchExamCredits(ctx context.Context, exam string) ([]ExamCredit, error)

	// GetWaiver returns the waiver rule for an exact program name.
	GetWaiver(ctx context.Context, major string) (WaiverRule, error)
	// SearchWaiver is the bidirectional substring fallback, first hit wins.
	SearchWaiver(ctx context.Context, major string) (WaiverRule, error)
}
