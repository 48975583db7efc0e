package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core/ge"
)

type geRepository struct {
	db *sqlx.DB
}

var _ ge.Repository = (*geRepository)(nil) // interface compliance check

func NewGERepository(db *sqlx.DB) *geRepository {
	return &geRepository{db: db}
}

func (repo geRepository) GetCourse(ctx context.Context, code string) (ge.Course, error) {
	q := repo.db.Rebind(`
		SELECT code, title, units, area, us1, us2, us3, lab_credit
		FROM ge_courses
		WHERE UPPER(code) = UPPER(?)
		ORDER BY area`)

	var rows []ge.Course
	if err := repo.db.SelectContext(ctx, &rows, q, code); err != nil {
		return ge.Course{}, errors.Wrapf(err, "querying course %q", code)
	}
	if len(rows) == 0 {
		return ge.Course{}, ge.ErrNotFound
	}

	// a course has one row per qualifying area; fold them together
	course := rows[0]
	course.Areas = []ge.AreaCode{course.Area}
	for _, row := range rows[1:] {
		course.Areas = append(course.Areas, row.Area)
		course.US1 = course.US1 || row.US1
		course.US2 = course.US2 || row.US2
		course.US3 = course.US3 || row.US3
		course.LabCredit = course.LabCredit || row.LabCredit
	}
	return course, nil
}

func (repo geRepository) CoursesByArea(ctx context.Context, area ge.AreaCode) ([]ge.Course, error) {
	q := repo.db.Rebind(`
		SELECT code, title, units, area, us1, us2, us3, lab_credit
		FROM ge_courses
		WHERE area = ?
		ORDER BY code`)

	var rows []ge.Course
	if err := repo.db.SelectContext(ctx, &rows, q, string(area)); err != nil {
		return nil, errors.Wrapf(err, "querying courses for area %s", area)
	}
	for i := range rows {
		rows[i].Areas = []ge.AreaCode{rows[i].Area}
	}
	return rows, nil
}

func (repo geRepository) QueryExamCredits(ctx context.Context, exam string) ([]ge.ExamCredit, error) {
	q := repo.db.Rebind(`
		SELECT ap_exam, min_score, max_score, course_code, course_title,
		       units_granted, ge_area, us1, us2, us3, lab_credit, notes
		FROM ap_articulation
		WHERE UPPER(ap_exam) = UPPER(?)
		ORDER BY min_score`)

	var rows []ge.ExamCredit
	if err := repo.db.SelectContext(ctx, &rows, q, exam); err != nil {
		return nil, errors.Wrapf(err, "querying articulation for %q", exam)
	}
	return rows, nil
}

func (repo geRepository) SearchExamCredits(ctx context.Context, exam string) ([]ge.ExamCredit, error) {
	q := repo.db.Rebind(`
		SELECT ap_exam, min_score, max_score, course_code, course_title,
		       units_granted, ge_area, us1, us2, us3, lab_credit, notes
		FROM ap_articulation
		WHERE UPPER(ap_exam) LIKE '%' || UPPER(?) || '%'
		   OR UPPER(?) LIKE '%' || UPPER(ap_exam) || '%'
		ORDER BY min_score`)

	var rows []ge.ExamCredit
	if err := repo.db.SelectContext(ctx, &rows, q, exam, exam); err != nil {
		return nil, errors.Wrapf(err, "searching articulation for %q", exam)
	}
	return rows, nil
}

func (repo geRepository) GetWaiver(ctx context.Context, major string) (ge.WaiverRule, error) {
	q := repo.db.Rebind(`
		SELECT major, degree, waived_ge_areas, notes, catalog_year
		FROM major_ge_exceptions
		WHERE UPPER(major) = UPPER(?)
		LIMIT 1`)

	var rule ge.WaiverRule
	if err := repo.db.GetContext(ctx, &rule, q, major); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ge.WaiverRule{}, ge.ErrNotFound
		}
		return ge.WaiverRule{}, errors.Wrapf(err, "querying waiver for %q", major)
	}
	return rule, nil
}

func (repo geRepository) SearchWaiver(ctx context.Context, major string) (ge.WaiverRule, error) {
	q := repo.db.Rebind(`
		SELECT major, degree, waived_ge_areas, notes, catalog_year
		FROM major_ge_exceptions
		WHERE UPPER(major) LIKE '%' || UPPER(?) || '%'
		   OR UPPER(?) LIKE '%' || UPPER(major) || '%'
		ORDER BY major
		LIMIT 1`)

	var rule ge.WaiverRule
	if err := repo.db.GetContext(ctx, &rule, q, major, major); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ge.WaiverRule{}, ge.ErrNotFound
		}
		return ge.WaiverRule{}, errors.Wrapf(err, "searching waiver for %q", major)
	}
	return rule, nil
}
