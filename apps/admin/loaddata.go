package main

import (
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core/ge"
	"github.com/spartanadvise/advisor/core/schedule"
	appfs "github.com/spartanadvise/advisor/fs"
)

// loadData upserts the embedded reference CSVs so reloading a newer build
// refreshes existing rows in place.
func (cli *commandLine) loadData() error {
	if err := cli.loadCourses(); err != nil {
		return err
	}
	if err := cli.loadArticulation(); err != nil {
		return err
	}
	if err := cli.loadExceptions(); err != nil {
		return err
	}
	if err := cli.loadSections(); err != nil {
		return err
	}
	logger.Println("reference data loaded")
	return nil
}

func (cli *commandLine) loadCourses() error {
	var rows []ge.Course
	if err := readSeed("seed/ge_courses.csv", &rows); err != nil {
		return err
	}

	q := `
		INSERT INTO ge_courses (area, code, title, units, us1, us2, us3, lab_credit)
		VALUES (:area, :code, :title, :units, :us1, :us2, :us3, :lab_credit)
		ON CONFLICT (area, code, title) DO UPDATE SET
			units = excluded.units,
			us1 = excluded.us1,
			us2 = excluded.us2,
			us3 = excluded.us3,
			lab_credit = excluded.lab_credit`
	for _, row := range rows {
		if _, err := cli.db.NamedExec(q, row); err != nil {
			return errors.Wrapf(err, "upserting course %s/%s", row.Area, row.Code)
		}
	}
	logger.Printf("upserted %d GE courses", len(rows))
	return nil
}

func (cli *commandLine) loadArticulation() error {
	var rows []ge.ExamCredit
	if err := readSeed("seed/ap_articulation.csv", &rows); err != nil {
		return err
	}

	q := `
		INSERT INTO ap_articulation
			(ap_exam, min_score, max_score, course_code, course_title,
			 units_granted, ge_area, us1, us2, us3, lab_credit, notes)
		VALUES
			(:ap_exam, :min_score, :max_score, :course_code, :course_title,
			 :units_granted, :ge_area, :us1, :us2, :us3, :lab_credit, :notes)
		ON CONFLICT (ap_exam, min_score, course_code) DO UPDATE SET
			max_score = excluded.max_score,
			course_title = excluded.course_title,
			units_granted = excluded.units_granted,
			ge_area = excluded.ge_area,
			us1 = excluded.us1,
			us2 = excluded.us2,
			us3 = excluded.us3,
			lab_credit = excluded.lab_credit,
			notes = excluded.notes`
	for _, row := range rows {
		if _, err := cli.db.NamedExec(q, row); err != nil {
			return errors.Wrapf(err, "upserting articulation %q (score %d)", row.Exam, row.MinScore)
		}
	}
	logger.Printf("upserted %d AP articulation rows", len(rows))
	return nil
}

func (cli *commandLine) loadExceptions() error {
	var rows []ge.WaiverRule
	if err := readSeed("seed/major_ge_exceptions.csv", &rows); err != nil {
		return err
	}

	q := `
		INSERT INTO major_ge_exceptions (major, degree, waived_ge_areas, notes, catalog_year)
		VALUES (:major, :degree, :waived_ge_areas, :notes, :catalog_year)
		ON CONFLICT (major, degree, catalog_year) DO UPDATE SET
			waived_ge_areas = excluded.waived_ge_areas,
			notes = excluded.notes`
	for _, row := range rows {
		if _, err := cli.db.NamedExec(q, row); err != nil {
			return errors.Wrapf(err, "upserting exception for %q (%s)", row.Major, row.Degree)
		}
	}
	logger.Printf("upserted %d major GE exceptions", len(rows))
	return nil
}

func (cli *commandLine) loadSections() error {
	var rows []schedule.CandidateClass
	if err := readSeed("seed/class_sections.csv", &rows); err != nil {
		return err
	}

	q := `
		INSERT INTO class_sections
			(course_name, section_number, class_number, days,
			 start_time, end_time, instructor, open_seats)
		VALUES
			(:course_name, :section_number, :class_number, :days,
			 :start_time, :end_time, :instructor, :open_seats)
		ON CONFLICT (class_number) DO UPDATE SET
			days = excluded.days,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			instructor = excluded.instructor,
			open_seats = excluded.open_seats`
	for _, row := range rows {
		if _, err := cli.db.NamedExec(q, row); err != nil {
			return errors.Wrapf(err, "upserting section %d", row.ClassNumber)
		}
	}
	logger.Printf("upserted %d class sections", len(rows))
	return nil
}

func readSeed(name string, out interface{}) error {
	f, err := appfs.FS.Open(name)
	if err != nil {
		return errors.Wrapf(err, "opening seed %s", name)
	}
	defer f.Close()

	if err := gocsv.Unmarshal(f, out); err != nil {
		return errors.Wrapf(err, "parsing seed %s", name)
	}
	return nil
}
