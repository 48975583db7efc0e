package dummydb

import (
	"context"
	"strings"

	"github.com/spartanadvise/advisor/core/ge"
)

type geRepository struct {
	db *geTables
}

var _ ge.Repository = (*geRepository)(nil) // interface compliance check

func NewGERepository(db *DB) *geRepository {
	return &geRepository{db: db.ge}
}

func (repo *geRepository) GetCourse(_ context.Context, code string) (ge.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var course ge.Course
	var found bool
	for _, row := range repo.db.courses {
		if !strings.EqualFold(row.Code, code) {
			continue
		}
		if !found {
			course = row
			course.Areas = []ge.AreaCode{row.Area}
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
		return ge.Course{}, ge.ErrNotFound
	}
	return course, nil
}

func (repo *geRepository) CoursesByArea(_ context.Context, area ge.AreaCode) ([]ge.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var courses []ge.Course
	for _, row := range repo.db.courses {
		if row.Area == area {
			row.Areas = []ge.AreaCode{row.Area}
			courses = append(courses, row)
		}
	}
	return courses, nil
}

func (repo *geRepository) QueryExamCredits(_ context.Context, exam string) ([]ge.ExamCredit, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var credits []ge.ExamCredit
	for _, row := range repo.db.credits {
		if strings.EqualFold(row.Exam, exam) {
			credits = append(credits, row)
		}
	}
	return credits, nil
}

func (repo *geRepository) SearchExamCredits(_ context.Context, exam string) ([]ge.ExamCredit, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	query := strings.ToUpper(exam)
	var credits []ge.ExamCredit
	for _, row := range repo.db.credits {
		stored := strings.ToUpper(row.Exam)
		if strings.Contains(stored, query) || strings.Contains(query, stored) {
			credits = append(credits, row)
		}
	}
	return credits, nil
}

func (repo *geRepository) GetWaiver(_ context.Context, major string) (ge.WaiverRule, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, row := range repo.db.waivers {
		if strings.EqualFold(row.Major, major) {
			return row, nil
		}
	}
	return ge.WaiverRule{}, ge.ErrNotFound
}

func (repo *geRepository) SearchWaiver(_ context.Context, major string) (ge.WaiverRule, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	query := strings.ToUpper(major)
	for _, row := range repo.db.waivers {
		stored := strings.ToUpper(row.Major)
		if strings.Contains(stored, query) || strings.Contains(query, stored) {
			return row, nil
		}
	}
	return ge.WaiverRule{}, ge.ErrNotFound
}
