package echoapi

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/spartanadvise/advisor/core/schedule"
)

type (
	// ReconcileRequest is a student's transcript claim: declared major plus
	// the courses and AP credits they report.
	ReconcileRequest struct {
		Major        string   `json:"major" validate:"required"`
		ClassesTaken []string `json:"classes_taken" validate:"dive,coursecode"`
		APCredits    []string `json:"ap_credits" validate:"dive,required"`
	}

	// MatchRequest carries a week of availability masks (decimal strings,
	// one per weekday) and the courses to shop for.
	MatchRequest struct {
		Availability map[string]string `json:"availability" validate:"required,dive,daymask"`
		Courses      []string          `json:"courses" validate:"required,min=1,dive,coursecode"`

		// RequireAllDays overrides the configured default when present.
		RequireAllDays *bool `json:"require_all_days,omitempty"`
	}
)

func (r ReconcileRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

func (r MatchRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

// DecodeAvailability parses the request's decimal masks. Malformed values
// are rejected by the daymask validator before this runs.
func (r MatchRequest) DecodeAvailability() schedule.Availability {
	avail := make(schedule.Availability, len(r.Availability))
	for day, raw := range r.Availability {
		if raw == "" {
			continue
		}
		mask, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		avail[day] = mask
	}
	return avail
}
