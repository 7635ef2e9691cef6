package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// CreateBooking godoc
// @Summary Request a booking
// @Description Creates a pending booking for the signed-in traveler
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.BookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking request received")
}

// MyBookings godoc
// @Summary Bookings of the signed-in traveler
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /bookings/me [get]
func (b *BookingController) MyBookings(c *gin.Context) {
	bookings, err := b.bookingService.MyBookings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings retrieved successfully")
}

// ListBookings godoc
// @Summary List bookings
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by tour, traveler or email"
// @Param status query string false "pending, confirmed or rejected"
// @Param sort query string false "date, tour_title, user_name, travelers, total_price or created_at"
// @Success 200 {object} utils.APIResponse
// @Router /admin/bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	var q request_models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	bookings, err := b.bookingService.ListBookings(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings retrieved successfully")
}

// UpdateBookingStatus godoc
// @Summary Confirm or reject a booking
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body request_models.StatusUpdateRequest true "confirmed or rejected"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /admin/bookings/{id}/status [patch]
func (b *BookingController) UpdateBookingStatus(c *gin.Context) {
	var req request_models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bookings, err := b.bookingService.UpdateBookingStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Booking status updated")
}
