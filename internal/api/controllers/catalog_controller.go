package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wildsafari/internal/models/request_models"
	"wildsafari/internal/services"
	"wildsafari/pkg/utils"
)

// CatalogController serves safari packages and destinations.
type CatalogController struct {
	tourService        services.TourServiceInterface
	destinationService services.DestinationServiceInterface
}

func NewCatalogController(tourService services.TourServiceInterface, destinationService services.DestinationServiceInterface) *CatalogController {
	return &CatalogController{
		tourService:        tourService,
		destinationService: destinationService,
	}
}

// ListTours godoc
// @Summary List safari packages
// @Tags Catalog
// @Produce json
// @Param q query string false "Search text"
// @Param status query string false "featured or standard"
// @Param sort query string false "title, price, duration or created_at; prefix with - for descending"
// @Success 200 {object} utils.APIResponse
// @Router /tours [get]
func (cc *CatalogController) ListTours(c *gin.Context) {
	var q request_models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	tours, err := cc.tourService.ListTours(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Tours retrieved successfully")
}

// GetTour godoc
// @Summary Get a safari package
// @Tags Catalog
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tours/{id} [get]
func (cc *CatalogController) GetTour(c *gin.Context) {
	tour, err := cc.tourService.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tour, "Tour retrieved successfully")
}

// CreateTour godoc
// @Summary Create a safari package
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.TourRequest true "Tour payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/tours [post]
func (cc *CatalogController) CreateTour(c *gin.Context) {
	var req request_models.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tours, err := cc.tourService.CreateTour(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, tours, "Tour created successfully")
}

// UpdateTour godoc
// @Summary Replace a safari package
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Param request body request_models.TourRequest true "Tour payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/tours/{id} [put]
func (cc *CatalogController) UpdateTour(c *gin.Context) {
	var req request_models.TourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	tours, err := cc.tourService.UpdateTour(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Tour updated successfully")
}

// DeleteTour godoc
// @Summary Delete a safari package
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Tour ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/tours/{id} [delete]
func (cc *CatalogController) DeleteTour(c *gin.Context) {
	tours, err := cc.tourService.DeleteTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tours, "Tour deleted successfully")
}

// ListDestinations godoc
// @Summary List destinations
// @Tags Catalog
// @Produce json
// @Param q query string false "Search text"
// @Param sort query string false "name, package_count or created_at; prefix with - for descending"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (cc *CatalogController) ListDestinations(c *gin.Context) {
	var q request_models.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	destinations, err := cc.destinationService.ListDestinations(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations retrieved successfully")
}

// GetDestination godoc
// @Summary Get a destination with its tours
// @Tags Catalog
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (cc *CatalogController) GetDestination(c *gin.Context) {
	detail, err := cc.destinationService.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Destination retrieved successfully")
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.DestinationRequest true "Destination payload"
// @Success 201 {object} utils.APIResponse
// @Router /admin/destinations [post]
func (cc *CatalogController) CreateDestination(c *gin.Context) {
	var req request_models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destinations, err := cc.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, destinations, "Destination created successfully")
}

// UpdateDestination godoc
// @Summary Replace a destination
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body request_models.DestinationRequest true "Destination payload"
// @Success 200 {object} utils.APIResponse
// @Router /admin/destinations/{id} [put]
func (cc *CatalogController) UpdateDestination(c *gin.Context) {
	var req request_models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	destinations, err := cc.destinationService.UpdateDestination(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destination updated successfully")
}

// DeleteDestination godoc
// @Summary Delete a destination
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Router /admin/destinations/{id} [delete]
func (cc *CatalogController) DeleteDestination(c *gin.Context) {
	destinations, err := cc.destinationService.DeleteDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destination deleted successfully")
}
