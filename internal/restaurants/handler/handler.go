// Package handler exposes the restaurant search endpoints over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant_inspections_backend/internal/restaurants/service"
	"restaurant_inspections_backend/internal/restaurants/transport"
	"restaurant_inspections_backend/platform/httpkit"
	"restaurant_inspections_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for restaurant inspections.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new restaurants handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SearchRestaurants runs a filtered restaurant search.
// POST /api/v1/restaurants/query
func (h *Handler) SearchRestaurants(c *gin.Context) {
	var req transport.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.svc.Search(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetRestaurantDetails returns one restaurant's inspection history.
// POST /api/v1/restaurants/details
func (h *Handler) GetRestaurantDetails(c *gin.Context) {
	var req transport.DetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, "restaurantName is required")
		return
	}

	result, err := h.svc.Details(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetBoroughs lists the distinct boroughs.
// GET /api/v1/restaurants/boroughs
func (h *Handler) GetBoroughs(c *gin.Context) {
	boroughs, err := h.svc.Boroughs(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, boroughs)
}

// GetCuisines lists the distinct cuisine descriptions.
// GET /api/v1/restaurants/cuisines
func (h *Handler) GetCuisines(c *gin.Context) {
	cuisines, err := h.svc.Cuisines(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, cuisines)
}

// GetMetadata returns both filter lists in one call.
// GET /api/v1/restaurants/metadata
func (h *Handler) GetMetadata(c *gin.Context) {
	metadata, err := h.svc.Metadata(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, metadata)
}

// Health is a static liveness probe for this module, no store access.
// GET /api/v1/restaurants/health
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "NYC Restaurants API is running")
}
