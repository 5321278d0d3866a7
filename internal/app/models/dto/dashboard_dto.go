package dto

// DashboardStats summarizes the collections for the landing view
type DashboardStats struct {
	TotalStudents  int64       `json:"total_students"`
	TotalCourses   int64       `json:"total_courses"`
	TotalOrders    int64       `json:"total_orders"`
	RecentStudents interface{} `json:"recent_students"`
}
