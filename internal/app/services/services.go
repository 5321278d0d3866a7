package services

import (
	"github.com/emrekoc/studentdesk/internal/app/repositories"
)

// Services holds all service instances
type Services struct {
	Student   *StudentService
	Order     *OrderService
	User      *UserService
	Product   *ProductService
	Category  *CategoryService
	Review    *ReviewService
	Course    *CourseService
	Dashboard *DashboardService
}

// NewServices creates all services from the repository container
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Student:   NewStudentService(repos.StudentRepository),
		Order:     NewOrderService(repos.OrderRepository),
		User:      NewUserService(repos.UserRepository),
		Product:   NewProductService(repos.ProductRepository),
		Category:  NewCategoryService(repos.CategoryRepository),
		Review:    NewReviewService(repos.ReviewRepository),
		Course:    NewCourseService(repos.CourseRepository),
		Dashboard: NewDashboardService(repos.StudentRepository, repos.CourseRepository, repos.OrderRepository),
	}
}
