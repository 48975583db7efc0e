package ge

import (
	"strconv"
	"strings"

	"github.com/spartanadvise/advisor/core"
)

type (
	// Course is a GE-qualifying catalog course. A course may carry several
	// area codes (a lab science tags both its science area and B3).
	Course struct {
		Code      string     `json:"code" db:"code" csv:"code"`
		Title     string     `json:"title" db:"title" csv:"title"`
		Units     float64    `json:"units" db:"units" csv:"units"`
		Areas     []AreaCode `json:"areas" db:"-" csv:"-"`
		Area      AreaCode   `json:"-" db:"area" csv:"area"` // single-area row form
		US1       bool       `json:"us1" db:"us1" csv:"us1"`
		US2       bool       `json:"us2" db:"us2" csv:"us2"`
		US3       bool       `json:"us3" db:"us3" csv:"us3"`
		LabCredit bool       `json:"lab_credit" db:"lab_credit" csv:"lab_credit"`
	}

	// ExamCredit is one articulation row: an exam name plus qualifying-score
	// range mapping to an equivalent course. Multiple rows may share an exam
	// name; they are kept ordered by ascending MinScore.
	ExamCredit struct {
		Exam         string  `json:"exam" db:"ap_exam" csv:"ap_exam"`
		MinScore     int     `json:"min_score" db:"min_score" csv:"min_score"`
		MaxScore     int     `json:"max_score" db:"max_score" csv:"max_score"`
		CourseCode   string  `json:"course_code" db:"course_code" csv:"course_code"`
		CourseTitle  string  `json:"course_title" db:"course_title" csv:"course_title"`
		UnitsGranted float64 `json:"units_granted" db:"units_granted" csv:"units_granted"`
		Areas        string  `json:"areas" db:"ge_area" csv:"ge_area"` // comma-separated
		US1          bool    `json:"us1" db:"us1" csv:"us1"`
		US2          bool    `json:"us2" db:"us2" csv:"us2"`
		US3          bool    `json:"us3" db:"us3" csv:"us3"`
		LabCredit    bool    `json:"lab_credit" db:"lab_credit" csv:"lab_credit"`
		Notes        string  `json:"notes,omitempty" db:"notes" csv:"notes"`
	}

	// WaiverRule is a program-specific GE exception row.
	WaiverRule struct {
		Major       string `json:"major" db:"major" csv:"major"`
		Degree      string `json:"degree" db:"degree" csv:"degree"`
		WaivedAreas string `json:"waived_ge_areas" db:"waived_ge_areas" csv:"waived_ge_areas"` // comma-separated tokens
		Notes       string `json:"notes,omitempty" db:"notes" csv:"notes"`
		CatalogYear string `json:"catalog_year" db:"catalog_year" csv:"catalog_year"`
	}

	// ClassifiedCourse is the classifier's per-course output.
	ClassifiedCourse struct {
		Code      string     `json:"name"`
		Title     string     `json:"title,omitempty"`
		Areas     []AreaCode `json:"area"`
		Units     float64    `json:"units"`
		US1       bool       `json:"us1"`
		US2       bool       `json:"us2"`
		US3       bool       `json:"us3"`
		LabCredit bool       `json:"lab_credit"`
	}

	// TranslationResult is the translator's per-exam output.
	TranslationResult struct {
		Exam        string     `json:"exam"`
		CourseCode  string     `json:"course_code"`
		CourseTitle string     `json:"course_title"`
		Areas       []AreaCode `json:"areas"`
		Units       float64    `json:"units"`
		US1         bool       `json:"us1"`
		US2         bool       `json:"us2"`
		US3         bool       `json:"us3"`
		LabCredit   bool       `json:"lab_credit"`
	}

	// ExamScore is a claimed exam, optionally with the achieved score.
	// Score 0 means unknown.
	ExamScore struct {
		Name  string
		Score int
	}
)

// SplitAreas de-duplicates the credit's comma-separated area list.
func (c ExamCredit) SplitAreas() []AreaCode {
	return splitAreaList(c.Areas)
}

// Tokens splits the rule's waived-areas list ("A3, D1, PE, S, V").
func (w WaiverRule) Tokens() []string {
	var tokens []string
	for _, tok := range strings.Split(w.WaivedAreas, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, strings.ToUpper(tok))
		}
	}
	return tokens
}

func splitAreaList(s string) []AreaCode {
	var areas []AreaCode
	seen := make(map[AreaCode]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		area := AreaCode(strings.ToUpper(part))
		if !seen[area] {
			seen[area] = true
			areas = append(areas, area)
		}
	}
	return areas
}

// ParseExamScore parses a claimed credit of the form "AP Calculus AB" or
// "AP Calculus AB:5". A malformed or out-of-range trailing score is kept as
// part of the name rather than rejected.
func ParseExamScore(s string) ExamScore {
	name := core.CleanString(s)
	if idx := strings.LastIndex(name, ":"); idx > 0 {
		if score, err := strconv.Atoi(strings.TrimSpace(name[idx+1:])); err == nil && score >= 1 && score <= 5 {
			return ExamScore{Name: core.CleanString(name[:idx]), Score: score}
		}
	}
	return ExamScore{Name: name}
}

// BestForScore picks the winning articulation row for an achieved score:
// the row with the highest MinScore that is still <= score. Rows must be
// ordered by ascending MinScore. Score 0 (unknown) takes the first row.
func BestForScore(rows []ExamCredit, score int) (ExamCredit, bool) {
	if len(rows) == 0 {
		return ExamCredit{}, false
	}
	if score <= 0 {
		return rows[0], true
	}
	var best ExamCredit
	var found bool
	for _, row := range rows {
		if row.MinScore <= score {
			best = row
			found = true
		}
	}
	return best, found
}
