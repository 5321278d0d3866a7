package repositories

import (
	"github.com/emrekoc/studentdesk/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository  *StudentRepository
	OrderRepository    *OrderRepository
	ProductRepository  *ProductRepository
	UserRepository     *UserRepository
	CategoryRepository *CategoryRepository
	ReviewRepository   *ReviewRepository
	CourseRepository   *CourseRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(database),
		OrderRepository:    NewOrderRepository(database),
		ProductRepository:  NewProductRepository(database),
		UserRepository:     NewUserRepository(database),
		CategoryRepository: NewCategoryRepository(database),
		ReviewRepository:   NewReviewRepository(database),
		CourseRepository:   NewCourseRepository(database),
	}
}
