package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrekoc/studentdesk/internal/app/controllers"
	"github.com/emrekoc/studentdesk/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	orderController *controllers.OrderController,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	categoryController *controllers.CategoryController,
	reviewController *controllers.ReviewController,
	courseController *controllers.CourseController,
	dashboardController *controllers.DashboardController,
) {
	// Liveness probe; also exercises nothing but the router itself
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/count", studentController.CountStudents)
		students.GET("/export", studentController.ExportStudents)
		students.POST("/import", studentController.ImportStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	orders := v1.Group("/orders")
	{
		orders.GET("", orderController.GetAllOrders)
		orders.POST("", orderController.CreateOrder)
		orders.GET("/stats", orderController.GetOrderStats)
		orders.GET("/:id", orderController.GetOrderByID)
		orders.PATCH("/:id/status", orderController.UpdateOrderStatus)
		orders.DELETE("/:id", orderController.DeleteOrder)
	}

	users := v1.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.POST("", userController.CreateUser)
		users.GET("/:id", userController.GetUserByID)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	products := v1.Group("/products")
	{
		products.GET("", productController.GetAllProducts)
		products.POST("", productController.CreateProduct)
		products.GET("/:id", productController.GetProductByID)
		products.PUT("/:id", productController.UpdateProduct)
		products.DELETE("/:id", productController.DeleteProduct)
		products.GET("/:id/reviews", reviewController.GetProductReviews)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", categoryController.GetAllCategories)
		categories.POST("", categoryController.CreateCategory)
		categories.GET("/:id", categoryController.GetCategoryByID)
		categories.DELETE("/:id", categoryController.DeleteCategory)
	}

	reviews := v1.Group("/reviews")
	{
		reviews.POST("", reviewController.CreateReview)
		reviews.DELETE("/:id", reviewController.DeleteReview)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.POST("", courseController.CreateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	v1.GET("/dashboard", dashboardController.GetStats)
}
