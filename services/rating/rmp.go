package ratingsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core"
	"github.com/spartanadvise/advisor/core/schedule"
)

const teacherSearchQuery = `query TeacherSearchPaginationQuery(
  $count: Int!
  $cursor: String
  $query: TeacherSearchQuery!
) {
  search: newSearch {
    teachers(query: $query, first: $count, after: $cursor) {
      edges {
        node {
          id
          firstName
          lastName
          avgRating
          numRatings
          avgDifficulty
          wouldTakeAgainPercent
          department
        }
      }
      resultCount
    }
  }
}`

type (
	rmpService struct {
		client   *http.Client
		url      string
		schoolID string
		logger   core.Logger
	}

	searchVariables struct {
		Count  int    `json:"count"`
		Cursor string `json:"cursor"`
		Query  struct {
			Text     string `json:"text"`
			SchoolID string `json:"schoolID"`
			Fallback bool   `json:"fallback"`
		} `json:"query"`
	}

	searchRequest struct {
		Query         string          `json:"query"`
		OperationName string          `json:"operationName"`
		Variables     searchVariables `json:"variables"`
	}

	teacherNode struct {
		ID            string  `json:"id"`
		FirstName     string  `json:"firstName"`
		LastName      string  `json:"lastName"`
		AvgRating     float64 `json:"avgRating"`
		NumRatings    int     `json:"numRatings"`
		AvgDifficulty float64 `json:"avgDifficulty"`
	}

	searchResponse struct {
		Data struct {
			Search struct {
				Teachers struct {
					Edges []struct {
						Node teacherNode `json:"node"`
					} `json:"edges"`
					ResultCount int `json:"resultCount"`
				} `json:"teachers"`
			} `json:"search"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
)

var _ schedule.RatingService = (*rmpService)(nil)

// NewRMPService talks to the RateMyProfessors GraphQL API. schoolID is the
// base64 school node ID (SJSU is "U2Nob29sLTg4MQ==").
func NewRMPService(conf core.RatingConfig, logger core.Logger) *rmpService {
	return &rmpService{
		client:   &http.Client{Timeout: conf.Timeout},
		url:      conf.URL,
		schoolID: conf.SchoolID,
		logger:   logger,
	}
}

func (svc rmpService) InstructorRating(ctx context.Context, name string) (schedule.Rating, error) {
	reqBody := searchRequest{
		Query:         teacherSearchQuery,
		OperationName: "TeacherSearchPaginationQuery",
	}
	reqBody.Variables.Count = 5
	reqBody.Variables.Query.Text = name
	reqBody.Variables.Query.SchoolID = svc.schoolID
	reqBody.Variables.Query.Fallback = true

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return schedule.Rating{}, errors.Wrap(err, "marshaling rating query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.url, bytes.NewReader(payload))
	if err != nil {
		return schedule.Rating{}, errors.Wrap(err, "building rating request")
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic dGVzdDp0ZXN0") // RMP's public token

	res, err := svc.client.Do(req)
	if err != nil {
		return schedule.Rating{}, errors.Wrapf(err, "querying ratings for %q", name)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return schedule.Rating{}, errors.Errorf("rating query for %q: status %d", name, res.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return schedule.Rating{}, errors.Wrapf(err, "decoding ratings for %q", name)
	}
	if len(data.Errors) > 0 {
		return schedule.Rating{}, errors.Errorf("rating query for %q: %s", name, data.Errors[0].Message)
	}

	edges := data.Data.Search.Teachers.Edges
	if len(edges) == 0 {
		return schedule.Rating{}, errors.Errorf("no ratings found for %q", name)
	}

	// first hit is RMP's best match
	node := edges[0].Node
	svc.logger.Debug(fmt.Sprintf(
		"ratingsvc: %s %s rated %.1f (difficulty %.1f, %d ratings)",
		node.FirstName, node.LastName, node.AvgRating, node.AvgDifficulty, node.NumRatings,
	))
	return schedule.Rating{AvgRating: node.AvgRating, AvgDifficulty: node.AvgDifficulty}, nil
}
