package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spartanadvise/advisor/core"
)

type (
	// ClassRepository lists open sections (open_seats > 0) for a course
	// name, case-insensitively.
	ClassRepository interface {
		OpenClassesFor(ctx context.Context, courseName string) ([]CandidateClass, error)
	}

	// Rating is an instructor quality signal.
	Rating struct {
		AvgRating     float64 `json:"avgRating"`
		AvgDifficulty float64 `json:"avgDifficulty"`
	}

	// RatingService resolves an instructor name to a rating. It crosses an
	// untrusted network boundary: callers bound it with a timeout and treat
	// failure as rating-unknown.
	RatingService interface {
		InstructorRating(ctx context.Context, name string) (Rating, error)
	}

	// MatchOptions tunes one match run.
	MatchOptions struct {
		// RequireAllDays demands every meeting day fit a free interval.
		// False restores the legacy behavior where one fitting day admits
		// the whole class.
		RequireAllDays bool
		DayStartHour   int
		SlotMinutes    int
	}

	Service struct {
		repo          ClassRepository
		ratings       RatingService
		log           core.Logger
		ratingTimeout time.Duration
	}
)

// NewMatchOptions returns the defaults: all meeting days must fit.
func NewMatchOptions() MatchOptions {
	return MatchOptions{
		RequireAllDays: true,
		DayStartHour:   DayStartHour,
		SlotMinutes:    SlotMinutes,
	}
}

func NewService(repo ClassRepository, ratings RatingService, log core.Logger, ratingTimeout time.Duration) *Service {
	if log == nil {
		log = core.NopLogger{}
	}
	if ratingTimeout <= 0 {
		ratingTimeout = 10 * time.Second
	}
	return &Service{repo: repo, ratings: ratings, log: log, ratingTimeout: ratingTimeout}
}

// Match selects the open sections of the requested courses that fit inside
// the student's free time, ranked by instructor rating (highest first,
// ties broken by lowest difficulty).
//
// Section and rating lookups are independent reads and fan out
// concurrently. A rating failure or timeout degrades to rating-unknown and
// never aborts the match.
func (svc *Service) Match(ctx context.Context, avail Availability, courses []string, opts MatchOptions) ([]CandidateClass, error) {
	free := avail.FreeByDay(opts.DayStartHour, opts.SlotMinutes)

	// fan out over courses; each list is an independent read
	perCourse := make([][]CandidateClass, len(courses))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, course := range courses {
		i, course := i, course
		g.Go(func() error {
			classes, err := svc.repo.OpenClassesFor(gctx, course)
			if err != nil {
				svc.log.Error(fmt.Sprintf("schedule: open classes for %q: %v", course, err), err)
				return nil // degrade to no sections for this course
			}
			perCourse[i] = classes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pool []CandidateClass
	for _, classes := range perCourse {
		for _, class := range classes {
			class.Rating, class.Difficulty, class.Rated = svc.lookupRating(ctx, class.Instructor)
			pool = insertRanked(pool, class)
		}
	}

	matched := make([]CandidateClass, 0, len(pool))
	for _, class := range pool {
		if svc.fitsSchedule(class, free, opts.RequireAllDays) {
			matched = append(matched, class)
		}
	}
	return matched, nil
}

func (svc *Service) lookupRating(ctx context.Context, instructor string) (rating, difficulty float64, ok bool) {
	if svc.ratings == nil || instructor == "" {
		return 0, 0, false
	}
	rctx, cancel := context.WithTimeout(ctx, svc.ratingTimeout)
	defer cancel()

	r, err := svc.ratings.InstructorRating(rctx, instructor)
	if err != nil {
		svc.log.Warn(fmt.Sprintf("schedule: rating lookup for %q failed, treating as unknown: %v", instructor, err))
		return 0, 0, false
	}
	return r.AvgRating, r.AvgDifficulty, true
}

// insertRanked keeps the pool ordered by (-rating, difficulty) under
// single insertions.
func insertRanked(pool []CandidateClass, class CandidateClass) []CandidateClass {
	idx := sort.Search(len(pool), func(i int) bool {
		if pool[i].Rating != class.Rating {
			return pool[i].Rating < class.Rating
		}
		return pool[i].Difficulty > class.Difficulty
	})
	pool = append(pool, CandidateClass{})
	copy(pool[idx+1:], pool[idx:])
	pool[idx] = class
	return pool
}

// fitsSchedule checks the class's time range against each meeting day's
// free intervals. The range must sit inside a single interval on a day for
// that day to fit.
func (svc *Service) fitsSchedule(class CandidateClass, free map[string][]Interval, requireAllDays bool) bool {
	start, err := ParseClockTime(class.StartTime)
	if err != nil {
		svc.log.Warn(fmt.Sprintf("schedule: class %d has malformed start %q", class.ClassNumber, class.StartTime))
		return false
	}
	end, err := ParseClockTime(class.EndTime)
	if err != nil {
		svc.log.Warn(fmt.Sprintf("schedule: class %d has malformed end %q", class.ClassNumber, class.EndTime))
		return false
	}
	if start == TBASentinel || end == TBASentinel {
		return false
	}

	days := SplitDays(class.Days)
	if len(days) == 0 {
		return false
	}
	for _, day := range days {
		var dayFits bool
		for _, iv := range free[day.Name()] {
			if iv.Contains(start, end) {
				dayFits = true
				break
			}
		}
		if requireAllDays && !dayFits {
			return false
		}
		if !requireAllDays && dayFits {
			return true
		}
	}
	return requireAllDays
}
