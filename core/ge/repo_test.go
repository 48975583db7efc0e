package ge

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// fakeRepo is an in-memory Repository for tests. A non-nil failWith is
// returned from every lookup to simulate a store outage.
type fakeRepo struct {
	courses  []Course
	credits  []ExamCredit
	waivers  []WaiverRule
	failWith error
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) GetCourse(_ context.Context, code string) (Course, error) {
	if r.failWith != nil {
		return Course{}, r.failWith
	}
	var course Course
	var found bool
	for _, row := range r.courses {
		if !strings.EqualFold(row.Code, code) {
			continue
		}
		if !found {
			course = row
			course.Areas = []AreaCode{row.Area}
			found = true
			continue
		}
		course.Areas = append(course.Areas, row.Area)
		course.US1 = course.US1 || row.US1
		course.US2 = course.US2 || row.US2
		course.US3 = course.US3 || row.US3
		course.LabCredit = course.LabCredit || row.LabCredit
	}
	if !found {
		return Course{}, ErrNotFound
	}
	return course, nil
}

func (r *fakeRepo) CoursesByArea(_ context.Context, area AreaCode) ([]Course, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var courses []Course
	for _, row := range r.courses {
		if row.Area == area {
			row.Areas = []AreaCode{row.Area}
			courses = append(courses, row)
		}
	}
	return courses, nil
}

func (r *fakeRepo) QueryExamCredits(_ context.Context, exam string) ([]ExamCredit, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var credits []ExamCredit
	for _, row := range r.credits {
		if strings.EqualFold(row.Exam, exam) {
			credits = append(credits, row)
		}
	}
	return credits, nil
}

func (r *fakeRepo) SearchExamCredits(_ context.Context, exam string) ([]ExamCredit, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	query := strings.ToUpper(exam)
	var credits []ExamCredit
	for _, row := range r.credits {
		stored := strings.ToUpper(row.Exam)
		if strings.Contains(stored, query) || strings.Contains(query, stored) {
			credits = append(credits, row)
		}
	}
	return credits, nil
}

func (r *fakeRepo) GetWaiver(_ context.Context, major string) (WaiverRule, error) {
	if r.failWith != nil {
		return WaiverRule{}, r.failWith
	}
	for _, row := range r.waivers {
		if strings.EqualFold(row.Major, major) {
			return row, nil
		}
	}
	return WaiverRule{}, ErrNotFound
}

func (r *fakeRepo) SearchWaiver(_ context.Context, major string) (WaiverRule, error) {
	if r.failWith != nil {
		return WaiverRule{}, r.failWith
	}
	query := strings.ToUpper(major)
	for _, row := range r.waivers {
		stored := strings.ToUpper(row.Major)
		if strings.Contains(stored, query) || strings.Contains(query, stored) {
			return row, nil
		}
	}
	return WaiverRule{}, ErrNotFound
}

var errStoreDown = errors.New("store down")
