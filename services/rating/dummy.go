package ratingsvc

import (
	"context"

	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core/schedule"
)

type dummyService struct {
	Ratings map[string]schedule.Rating
}

var _ schedule.RatingService = (*dummyService)(nil)

func NewDummyService(ratings map[string]schedule.Rating) *dummyService {
	if ratings == nil {
		ratings = make(map[string]schedule.Rating)
	}
	return &dummyService{Ratings: ratings}
}

func (svc dummyService) InstructorRating(_ context.Context, name string) (schedule.Rating, error) {
	if r, ok := svc.Ratings[name]; ok {
		return r, nil
	}
	return schedule.Rating{}, errors.Errorf("no ratings found for %q", name)
}
