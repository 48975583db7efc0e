package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spartanadvise/advisor/core"
	"github.com/spartanadvise/advisor/core/ge"
	"github.com/spartanadvise/advisor/core/schedule"
	ratingsvc "github.com/spartanadvise/advisor/services/rating"
	dummydb "github.com/spartanadvise/advisor/storage/database/dummy"
)

func setupServer(t *testing.T) *Server {
	t.Helper()

	db, err := dummydb.Open()
	require.NoError(t, err)

	conf := &core.Config{
		Debug:    false,
		TestMode: true,
		AppName:  "Spartan Advisor",
		Schedule: core.ScheduleConfig{
			DayStartHour:   schedule.DayStartHour,
			SlotMinutes:    schedule.SlotMinutes,
			RequireAllDays: true,
		},
	}

	logger := core.NopLogger{}
	ratings := ratingsvc.NewDummyService(map[string]schedule.Rating{
		"Amira Hassan": {AvgRating: 4.1, AvgDifficulty: 2.5},
	})

	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)

	return NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		AdvisingSvc:    ge.NewService(dummydb.NewGERepository(db), logger),
		ScheduleSvc:    schedule.NewService(dummydb.NewClassRepository(db), ratings, logger, time.Second),
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestReconcileEndpoint(t *testing.T) {
	srv := setupServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/v1/advising/reconcile", ReconcileRequest{
		Major:        "Software Engineering",
		ClassesTaken: []string{"ENGL 1A", "MATH 30", "CS 146"},
		APCredits:    []string{"AP Biology"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res ge.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.NotEmpty(t, res.RequestID)
	assert.Equal(t, []string{"CS 146"}, res.Categorization.EverythingElse)
	assert.Len(t, res.APCredits.Translated, 1)
	require.NotNil(t, res.MajorExceptions.Matched)
	assert.Equal(t, "Software Engineering", res.MajorExceptions.Matched.Major)

	// A3 waived area credit + ENGL 1A
	assert.Equal(t, float64(6), res.GEProgress[ge.CatA].Earned)
	assert.True(t, res.GEProgress[ge.CatPE].Waived)
}

func TestReconcileEndpointValidation(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name string
		body ReconcileRequest
	}{
		{name: "missing major", body: ReconcileRequest{ClassesTaken: []string{"ENGL 1A"}}},
		{name: "bad course code", body: ReconcileRequest{Major: "Computer Science", ClassesTaken: []string{"not a course!!"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, srv, http.MethodPost, "/v1/advising/reconcile", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestQueryAreasEndpoint(t *testing.T) {
	srv := setupServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/advising/ge/areas", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var areas []struct {
		Area     ge.AreaCode `json:"area"`
		Category ge.Category `json:"category"`
		Units    float64     `json:"required_units"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &areas))
	assert.Len(t, areas, 19)
	assert.Equal(t, ge.AreaA1, areas[0].Area)
	assert.Equal(t, float64(9), areas[0].Units)
}

func TestQueryAreaCoursesEndpoint(t *testing.T) {
	srv := setupServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/v1/advising/ge/areas/A2/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var courses []ge.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	require.NotEmpty(t, courses)
	for _, c := range courses {
		assert.Contains(t, c.Areas, ge.AreaA2)
	}

	rec = doJSON(t, srv, http.MethodGet, "/v1/advising/ge/areas/ZZ/courses", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
