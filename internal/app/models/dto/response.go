package dto

import "time"

// APIResponse is the uniform envelope every repository-backed endpoint returns. Callers
// branch on Success; Error carries a mapped human-readable message only,
// never store-internal detail.
type APIResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	// Invalidates tells the calling layer that cached listing views are
	// stale after a mutation; the server holds no cache itself.
	Invalidates bool      `json:"invalidates,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewSuccessResponse creates a success envelope around data
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMutationResponse creates a success envelope for a mutating operation,
// flagging that collection views should be refetched.
func NewMutationResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:     true,
		Data:        data,
		Invalidates: true,
		Timestamp:   time.Now(),
	}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(errorDetail *ErrorDetail) APIResponse {
	return APIResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes offset/limit paging metadata
type PaginationInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
}
