package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/doctors-api/internal/models"
)

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.Store.ListServices(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve services")
		return
	}
	if services == nil {
		services = make([]models.Service, 0)
	}
	c.JSON(http.StatusOK, services)
}

// ListCategories lists services projected to their id and title.
func (h *Handler) ListCategories(c *gin.Context) {
	services, err := h.Store.ListServiceTitles(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve categories")
		return
	}
	if services == nil {
		services = make([]models.Service, 0)
	}
	c.JSON(http.StatusOK, services)
}

// GetAvailable returns every service with the slots still open on ?date=.
func (h *Handler) GetAvailable(c *gin.Context) {
	available, err := h.Availability.ForDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.storeFailure(c, err, "Failed to compute availability")
		return
	}
	c.JSON(http.StatusOK, available)
}
