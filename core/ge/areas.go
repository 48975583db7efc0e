package ge

import "fmt"

// AreaCode is a fine-grained GE requirement code (A1, B3, US2, ...).
type AreaCode string

const (
	AreaA1  AreaCode = "A1"
	AreaA2  AreaCode = "A2"
	AreaA3  AreaCode = "A3"
	AreaB1  AreaCode = "B1"
	AreaB2  AreaCode = "B2"
	AreaB3  AreaCode = "B3"
	AreaB4  AreaCode = "B4"
	AreaC1  AreaCode = "C1"
	AreaC2  AreaCode = "C2"
	AreaD   AreaCode = "D"
	AreaE   AreaCode = "E"
	AreaF   AreaCode = "F"
	AreaUS1 AreaCode = "US1"
	AreaUS2 AreaCode = "US2"
	AreaUS3 AreaCode = "US3"
	AreaR   AreaCode = "R"
	AreaS   AreaCode = "S"
	AreaV   AreaCode = "V"
	AreaPE  AreaCode = "PE"
)

// Category groups related areas under one unit requirement.
type Category string

const (
	CatA     Category = "A"
	CatB     Category = "B"
	CatC     Category = "C"
	CatD     Category = "D"
	CatE     Category = "E"
	CatF     Category = "F"
	CatUS    Category = "US"
	CatUpper Category = "UPPER"
	CatPE    Category = "PE"
)

type categoryDef struct {
	Areas []AreaCode
	Units float64
}

var categoryDefs = map[Category]categoryDef{
	CatA:     {Areas: []AreaCode{AreaA1, AreaA2, AreaA3}, Units: 9},
	CatB:     {Areas: []AreaCode{AreaB1, AreaB2, AreaB3, AreaB4}, Units: 9},
	CatC:     {Areas: []AreaCode{AreaC1, AreaC2}, Units: 9},
	CatD:     {Areas: []AreaCode{AreaD}, Units: 6},
	CatE:     {Areas: []AreaCode{AreaE}, Units: 3},
	CatF:     {Areas: []AreaCode{AreaF}, Units: 3},
	CatUS:    {Areas: []AreaCode{AreaUS1, AreaUS2, AreaUS3}, Units: 6},
	CatUpper: {Areas: []AreaCode{AreaR, AreaS, AreaV}, Units: 9},
	CatPE:    {Areas: []AreaCode{AreaPE}, Units: 2},
}

// CategoryOrder is the canonical report ordering.
var CategoryOrder = []Category{CatA, CatB, CatC, CatD, CatE, CatF, CatUS, CatUpper, CatPE}

var areaCategory map[AreaCode]Category

func init() {
	areaCategory = make(map[AreaCode]Category)
	for cat, def := range categoryDefs {
		for _, area := range def.Areas {
			if prev, ok := areaCategory[area]; ok {
				panic(fmt.Sprintf("ge: area %s mapped to both %s and %s", area, prev, cat))
			}
			areaCategory[area] = cat
		}
	}
}

// CategoryOf resolves an area to its owning category.
// Areas outside the vocabulary resolve to ("", false).
func CategoryOf(area AreaCode) (Category, bool) {
	cat, ok := areaCategory[area]
	return cat, ok
}

// RequiredUnits returns the unit requirement of a category (0 for unknown).
func RequiredUnits(cat Category) float64 {
	return categoryDefs[cat].Units
}

// CategoryAreas returns the areas counting toward a category.
func CategoryAreas(cat Category) []AreaCode {
	return categoryDefs[cat].Areas
}

const (
	// defaultCourseUnits is the unit weight credited per GE area when the
	// catalog row carries no unit value.
	defaultCourseUnits = 3
	// labUnitWeight is the B3 lab weight.
	labUnitWeight = 1
	// minCCourses is how many distinct C1/C2 entries Area C needs.
	minCCourses = 3
)
