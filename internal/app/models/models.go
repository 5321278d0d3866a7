package models

// EnrollmentStatus defines the lifecycle state of a student record
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Active"
	EnrollmentInactive  EnrollmentStatus = "Inactive"
	EnrollmentGraduated EnrollmentStatus = "Graduated"
	EnrollmentSuspended EnrollmentStatus = "Suspended"
)

// PaymentStatus values derived from pending dues at creation time
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
)

// OrderStatus defines the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// UserRole defines the user role type
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)
