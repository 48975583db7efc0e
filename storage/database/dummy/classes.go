package dummydb

import (
	"context"
	"strings"

	"github.com/spartanadvise/advisor/core/schedule"
)

type classRepository struct {
	db *classTable
}

var _ schedule.ClassRepository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *DB) *classRepository {
	return &classRepository{db: db.classes}
}

func (repo *classRepository) OpenClassesFor(_ context.Context, courseName string) ([]schedule.CandidateClass, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var classes []schedule.CandidateClass
	for _, class := range repo.db.classes {
		if class.OpenSeats > 0 && strings.EqualFold(class.CourseName, courseName) {
			classes = append(classes, class)
		}
	}
	return classes, nil
}
