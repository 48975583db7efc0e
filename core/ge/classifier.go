package ge

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/spartanadvise/advisor/core"
)

// Classify splits a course-code list into GE-qualifying courses (with area
// and institution-requirement metadata) and everything else. Input order is
// preserved within each output list and duplicate codes are processed
// independently. A reference-store outage degrades to everything-other.
func (svc *Service) Classify(ctx context.Context, codes []string) (geClasses []ClassifiedCourse, other []string) {
	geClasses = make([]ClassifiedCourse, 0, len(codes))
	other = make([]string, 0)

	for _, code := range codes {
		cc, err := svc.classifyOne(ctx, code)
		if err != nil {
			if errors.Cause(err) != ErrNotFound {
				svc.log.Error(fmt.Sprintf("classifying course %q: %v", code, err), err)
			}
			other = append(other, code)
			continue
		}
		geClasses = append(geClasses, cc)
	}
	return geClasses, other
}

func (svc *Service) classifyOne(ctx context.Context, code string) (ClassifiedCourse, error) {
	course, err := svc.repo.GetCourse(ctx, core.NormalizeCode(code))
	if err != nil {
		return ClassifiedCourse{}, err
	}
	return ClassifiedCourse{
		Code:      course.Code,
		Title:     course.Title,
		Areas:     course.Areas,
		Units:     course.Units,
		US1:       course.US1,
		US2:       course.US2,
		US3:       course.US3,
		LabCredit: course.LabCredit,
	}, nil
}

// CoursesByArea lists the GE catalog courses qualifying for one area.
func (svc *Service) CoursesByArea(ctx context.Context, area AreaCode) ([]Course, error) {
	return svc.repo.CoursesByArea(ctx, area)
}
