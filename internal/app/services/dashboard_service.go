package services

import (
	"context"

	"github.com/emrekoc/studentdesk/internal/app/models/dto"
	"github.com/emrekoc/studentdesk/internal/app/repositories"
)

// recentStudentLimit caps the dashboard's newest-students slice
const recentStudentLimit = 5

// DashboardService aggregates collection summaries for the landing view
type DashboardService struct {
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
	orderRepo   *repositories.OrderRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	studentRepo *repositories.StudentRepository,
	courseRepo *repositories.CourseRepository,
	orderRepo *repositories.OrderRepository,
) *DashboardService {
	return &DashboardService{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
		orderRepo:   orderRepo,
	}
}

// GetStats collects the dashboard counters and the newest students
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	studentCount, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	courseCount, err := s.courseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	orderCounts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	var orderCount int64
	for _, n := range orderCounts {
		orderCount += int64(n)
	}

	recent, err := s.studentRepo.Recent(ctx, recentStudentLimit)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStats{
		TotalStudents:  studentCount,
		TotalCourses:   courseCount,
		TotalOrders:    orderCount,
		RecentStudents: recent,
	}, nil
}
