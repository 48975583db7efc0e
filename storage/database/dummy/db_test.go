package dummydb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spartanadvise/advisor/core/ge"
)

func TestOpenLoadsSeeds(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	assert.NotEmpty(t, db.ge.courses)
	assert.NotEmpty(t, db.ge.credits)
	assert.NotEmpty(t, db.ge.waivers)
	assert.NotEmpty(t, db.classes.classes)

	// credits must come out ordered by ascending MinScore
	for i := 1; i < len(db.ge.credits); i++ {
		assert.LessOrEqual(t, db.ge.credits[i-1].MinScore, db.ge.credits[i].MinScore)
	}
}

func TestGERepository(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewGERepository(db)
	ctx := context.Background()

	t.Run("GetCourse merges area rows", func(t *testing.T) {
		course, err := repo.GetCourse(ctx, "BIOL 10")
		require.NoError(t, err)
		assert.ElementsMatch(t, []ge.AreaCode{ge.AreaB2, ge.AreaB3}, course.Areas)
		assert.True(t, course.LabCredit)
	})

	t.Run("GetCourse is case-insensitive", func(t *testing.T) {
		course, err := repo.GetCourse(ctx, "engl 1a")
		require.NoError(t, err)
		assert.Equal(t, "ENGL 1A", course.Code)
	})

	t.Run("GetCourse miss", func(t *testing.T) {
		_, err := repo.GetCourse(ctx, "CS 9999")
		assert.Equal(t, ge.ErrNotFound, err)
	})

	t.Run("CoursesByArea", func(t *testing.T) {
		courses, err := repo.CoursesByArea(ctx, ge.AreaA2)
		require.NoError(t, err)
		require.NotEmpty(t, courses)
		for _, c := range courses {
			assert.Equal(t, ge.AreaA2, c.Area)
		}
	})

	t.Run("QueryExamCredits returns score bands in order", func(t *testing.T) {
		rows, err := repo.QueryExamCredits(ctx, "AP English Language and Composition")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 3, rows[0].MinScore)
		assert.Equal(t, 4, rows[1].MinScore)
	})

	t.Run("SearchExamCredits substring", func(t *testing.T) {
		rows, err := repo.SearchExamCredits(ctx, "calculus ab")
		require.NoError(t, err)
		assert.NotEmpty(t, rows)
	})

	t.Run("GetWaiver", func(t *testing.T) {
		rule, err := repo.GetWaiver(ctx, "Software Engineering")
		require.NoError(t, err)
		assert.Equal(t, []string{"A3", "D1", "PE", "S", "V"}, rule.Tokens())
	})

	t.Run("SearchWaiver substring", func(t *testing.T) {
		rule, err := repo.SearchWaiver(ctx, "Computer Science - AI Concentration")
		require.NoError(t, err)
		assert.Equal(t, "Computer Science", rule.Major)
	})
}

func TestClassRepository(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)
	repo := NewClassRepository(db)

	classes, err := repo.OpenClassesFor(context.Background(), "cs 46a")
	require.NoError(t, err)
	require.NotEmpty(t, classes)
	for _, class := range classes {
		assert.Equal(t, "CS 46A", class.CourseName)
		assert.Greater(t, class.OpenSeats, 0)
	}

	// section 2 has no open seats and must be filtered out
	for _, class := range classes {
		assert.NotEqual(t, 20145, class.ClassNumber)
	}
}
