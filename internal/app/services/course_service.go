package services

import (
	"context"

	"github.com/emrekoc/studentdesk/internal/app/models"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
)

// defaultCourseCredits applies when a course is created without credits
const defaultCourseCredits = 3

// CourseService handles course catalog business logic
type CourseService struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// GetAllCourses returns every course
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// courseFromRequest maps the request to a model, filling the credits
// default when the field is omitted.
func courseFromRequest(req *dto.CreateCourseRequest) *models.Course {
	course := &models.Course{
		Code:    req.Code,
		Name:    req.Name,
		Credits: req.Credits,
	}
	if course.Credits == 0 {
		course.Credits = defaultCourseCredits
	}
	if req.Description != "" {
		course.Description = &req.Description
	}
	return course
}

// CreateCourse stores a new course; codes are unique
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	return s.courseRepo.Create(ctx, courseFromRequest(req))
}

// DeleteCourse removes a course
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
