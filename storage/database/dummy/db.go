package dummydb

import (
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core/ge"
	"github.com/spartanadvise/advisor/core/schedule"
	appfs "github.com/spartanadvise/advisor/fs"
)

type (
	// DB is an in-memory copy of the reference tables, loaded from the
	// embedded seed CSVs. It backs tests and toolchain-free local runs.
	DB struct {
		ge      *geTables
		classes *classTable
	}

	geTables struct {
		sync.RWMutex
		courses []ge.Course
		credits []ge.ExamCredit
		waivers []ge.WaiverRule
	}

	classTable struct {
		sync.RWMutex
		classes []schedule.CandidateClass
	}
)

func Open() (*DB, error) {
	db := &DB{
		ge:      &geTables{},
		classes: &classTable{},
	}

	if err := loadCSV("seed/ge_courses.csv", &db.ge.courses); err != nil {
		return nil, err
	}
	if err := loadCSV("seed/ap_articulation.csv", &db.ge.credits); err != nil {
		return nil, err
	}
	if err := loadCSV("seed/major_ge_exceptions.csv", &db.ge.waivers); err != nil {
		return nil, err
	}
	if err := loadCSV("seed/class_sections.csv", &db.classes.classes); err != nil {
		return nil, err
	}

	sort.SliceStable(db.ge.credits, func(i, j int) bool {
		return db.ge.credits[i].MinScore < db.ge.credits[j].MinScore
	})
	return db, nil
}

func loadCSV(name string, out interface{}) error {
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
