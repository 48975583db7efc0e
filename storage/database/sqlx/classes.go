package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core/schedule"
)

type classRepository struct {
	db *sqlx.DB
}

var _ schedule.ClassRepository = (*classRepository)(nil) // interface compliance check

func NewClassRepository(db *sqlx.DB) *classRepository {
	return &classRepository{db: db}
}

func (repo classRepository) OpenClassesFor(ctx context.Context, courseName string) ([]schedule.CandidateClass, error) {
	q := repo.db.Rebind(`
		SELECT course_name, section_number, class_number, days,
		       start_time, end_time, instructor, open_seats
		FROM class_sections
		WHERE UPPER(course_name) = UPPER(?) AND open_seats > 0
		ORDER BY section_number`)

	var rows []schedule.CandidateClass
	if err := repo.db.SelectContext(ctx, &rows, q, courseName); err != nil {
		return nil, errors.Wrapf(err, "querying open classes for %q", courseName)
	}
	return rows, nil
}
