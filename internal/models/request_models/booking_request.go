package request_models

type BookingRequest struct {
	TourID    string `json:"tour_id" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Travelers int    `json:"travelers" binding:"required,min=1,max=50"`
	UserName  string `json:"user_name" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Message   string `json:"message" binding:"max=2000"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}
