package ge

import (
	"context"
	"reflect"
	"testing"
)

func TestResolveWaiver(t *testing.T) {
	repo := &fakeRepo{
		waivers: []WaiverRule{
			{Major: "Computer Science", Degree: "BS", WaivedAreas: "D1"},
			{Major: "Software Engineering", Degree: "BS", WaivedAreas: "A3, D1, PE, S, V"},
		},
	}
	svc := NewService(repo, nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		major      string
		wantMajor  string
		wantTokens []string
	}{
		{
			name:       "exact match",
			major:      "Software Engineering",
			wantMajor:  "Software Engineering",
			wantTokens: []string{"A3", "D1", "PE", "S", "V"},
		},
		{
			name:       "query contains stored name",
			major:      "Computer Science - Data Science Concentration",
			wantMajor:  "Computer Science",
			wantTokens: []string{"D1"},
		},
		{
			name:       "stored name contains query",
			major:      "software engin",
			wantMajor:  "Software Engineering",
			wantTokens: []string{"A3", "D1", "PE", "S", "V"},
		},
		{
			name:       "unknown major has no waivers",
			major:      "Underwater Basket Weaving",
			wantTokens: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.ResolveWaiver(ctx, tt.major)

			if tt.wantMajor == "" {
				if res.Matched != nil {
					t.Errorf("ResolveWaiver() matched %q, want no match", res.Matched.Major)
				}
			} else if res.Matched == nil || res.Matched.Major != tt.wantMajor {
				t.Errorf("ResolveWaiver() matched = %+v, want major %q", res.Matched, tt.wantMajor)
			}
			if !reflect.DeepEqual(res.Tokens, tt.wantTokens) {
				t.Errorf("ResolveWaiver() tokens = %v, want %v", res.Tokens, tt.wantTokens)
			}
		})
	}
}

func TestResolveWaiverStoreOutage(t *testing.T) {
	svc := NewService(&fakeRepo{failWith: errStoreDown}, nil)

	res := svc.ResolveWaiver(context.Background(), "Computer Science")
	if res.Matched != nil || len(res.Tokens) != 0 {
		t.Errorf("ResolveWaiver() = %+v, want degraded empty result", res)
	}
}

func TestApplyWaivers(t *testing.T) {
	t.Run("software engineering tokens", func(t *testing.T) {
		l := NewLedger()
		ApplyWaivers(l, []string{"A3", "D1", "PE", "S", "V"}, nil)

		if got := l[CatA].Earned; got != 3 {
			t.Errorf("A earned = %v, want 3", got)
		}
		if l[CatA].Waived {
			t.Error("A waived = true, want false (area token is partial)")
		}
		if got := l[CatD].Earned; got != 3 {
			t.Errorf("D earned = %v, want 3 (D1 partial)", got)
		}
		if l.Satisfied(CatD) {
			t.Error("D satisfied after D1 alone, want unsatisfied")
		}
		if !l[CatPE].Waived || !l.Satisfied(CatPE) {
			t.Error("PE not fully waived")
		}
		if got := l[CatPE].WaivedUnits; got != 2 {
			t.Errorf("PE waived units = %v, want 2", got)
		}
		if got := l[CatUpper].Earned; got != 6 {
			t.Errorf("UPPER earned = %v, want 6 (S+V)", got)
		}
	})

	t.Run("whole category token", func(t *testing.T) {
		l := NewLedger()
		ApplyWaivers(l, []string{"D"}, nil)

		if !l[CatD].Waived || l[CatD].Earned != 6 || l[CatD].WaivedUnits != 6 {
			t.Errorf("D progress = %+v, want fully waived", l[CatD])
		}
	})

	t.Run("category token never subtracts overshoot", func(t *testing.T) {
		l := NewLedger()
		l[CatD].Earned = 9
		ApplyWaivers(l, []string{"D"}, nil)

		if l[CatD].Earned != 9 || l[CatD].WaivedUnits != 0 {
			t.Errorf("D progress = %+v, want earned kept at 9 with no waived units", l[CatD])
		}
		if !l[CatD].Waived {
			t.Error("D waived = false, want true")
		}
	})

	t.Run("D1 stacks with earned D units", func(t *testing.T) {
		l := NewLedger()
		l[CatD].Earned = 3
		l[CatD].Courses = []string{"PSYC 1"}
		ApplyWaivers(l, []string{"D1"}, nil)

		if got := l[CatD].Earned; got != 6 {
			t.Errorf("D earned = %v, want 6", got)
		}
		if !l.Satisfied(CatD) {
			t.Error("D not satisfied with 3 earned + D1")
		}
	})

	t.Run("unknown token is skipped", func(t *testing.T) {
		l := NewLedger()
		ApplyWaivers(l, []string{"Q9"}, nil)

		for _, cat := range ledgerCategories {
			if l[cat].Earned != 0 || l[cat].Waived {
				t.Errorf("%s progress = %+v, want untouched", cat, l[cat])
			}
		}
	})
}
