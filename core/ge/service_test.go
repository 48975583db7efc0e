package ge

import (
	"context"
	"reflect"
	"testing"
)

func TestReconcile(t *testing.T) {
	repo := &fakeRepo{
		courses: catalogFixture,
		credits: articulationFixture,
		waivers: []WaiverRule{
			{Major: "Computer Science", Degree: "BS", WaivedAreas: "D1"},
			{Major: "Software Engineering", Degree: "BS", WaivedAreas: "A3, D1, PE, S, V"},
		},
	}
	svc := NewService(repo, nil)

	res := svc.Reconcile(
		context.Background(),
		"Computer Science",
		[]string{"ENGL 1A", "MATH 30", "CS 146"},
		[]string{"AP Biology", "AP Sportsball"},
	)

	if res.RequestID == "" {
		t.Error("Reconcile() request ID empty")
	}

	// classification
	if got := len(res.Categorization.GEClasses); got != 2 {
		t.Errorf("Reconcile() GE classes = %d, want 2", got)
	}
	if want := []string{"CS 146"}; !reflect.DeepEqual(res.Categorization.EverythingElse, want) {
		t.Errorf("Reconcile() everything else = %v, want %v", res.Categorization.EverythingElse, want)
	}

	// translation
	if got := len(res.APCredits.Translated); got != 1 {
		t.Errorf("Reconcile() translated = %d, want 1", got)
	}
	if want := []string{"AP Sportsball"}; !reflect.DeepEqual(res.APCredits.NotFound, want) {
		t.Errorf("Reconcile() not found = %v, want %v", res.APCredits.NotFound, want)
	}

	// ledger: ENGL 1A -> A 3; MATH 30 + AP Biology -> B 3+6; D1 waiver -> D 3
	if got := res.GEProgress[CatA].Earned; got != 3 {
		t.Errorf("Reconcile() A earned = %v, want 3", got)
	}
	if got := res.GEProgress[CatB].Earned; got != 9 {
		t.Errorf("Reconcile() B earned = %v, want 9", got)
	}
	if got := res.GEProgress[CatD].Earned; got != 3 {
		t.Errorf("Reconcile() D earned = %v, want 3", got)
	}
	if got := res.GEProgress[CatD].WaivedUnits; got != 3 {
		t.Errorf("Reconcile() D waived units = %v, want 3", got)
	}

	// B is complete, D is still short
	wantNeeded := []Category{CatA, CatC, CatD, CatE, CatF, CatUpper, CatPE}
	if !reflect.DeepEqual(res.GEAreasNeeded, wantNeeded) {
		t.Errorf("Reconcile() needed = %v, want %v", res.GEAreasNeeded, wantNeeded)
	}

	if res.MajorExceptions.Matched == nil || res.MajorExceptions.Matched.Major != "Computer Science" {
		t.Errorf("Reconcile() waiver = %+v, want Computer Science", res.MajorExceptions.Matched)
	}
	if want := []AreaCode{AreaUS1, AreaUS2, AreaUS3}; !reflect.DeepEqual(res.USAreasNeeded, want) {
		t.Errorf("Reconcile() US needed = %v, want %v", res.USAreasNeeded, want)
	}
}

func TestReconcileDegradesOnStoreOutage(t *testing.T) {
	svc := NewService(&fakeRepo{failWith: errStoreDown}, nil)

	res := svc.Reconcile(context.Background(), "Computer Science", []string{"ENGL 1A"}, []string{"AP Biology"})

	if want := []string{"ENGL 1A"}; !reflect.DeepEqual(res.Categorization.EverythingElse, want) {
		t.Errorf("Reconcile() everything else = %v, want %v", res.Categorization.EverythingElse, want)
	}
	if want := []string{"AP Biology"}; !reflect.DeepEqual(res.APCredits.NotFound, want) {
		t.Errorf("Reconcile() not found = %v, want %v", res.APCredits.NotFound, want)
	}
	if res.MajorExceptions.Matched != nil {
		t.Errorf("Reconcile() waiver = %+v, want none", res.MajorExceptions.Matched)
	}
	// every unit category remains open
	if got := len(res.GEAreasNeeded); got != len(ledgerCategories) {
		t.Errorf("Reconcile() needed %d categories, want %d", got, len(ledgerCategories))
	}
}
