package dto

// MessageResponse represents a standard success response for API endpoints
type MessageResponse struct {
	Message string `json:"message" example:"Event deleted successfully"`
}

// CreatedResponse carries the identifier of a newly created resource
type CreatedResponse struct {
	ID      int64  `json:"id" example:"42"`
	Message string `json:"message" example:"Event created successfully"`
}
