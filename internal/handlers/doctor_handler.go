package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/doctors-api/internal/models"
)

// AddDoctor stores a doctor profile. Any authenticated caller may add one.
func (h *Handler) AddDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := bindNewDocument(c, &doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Store.InsertDoctor(c.Request.Context(), &doctor)
	if err != nil {
		h.storeFailure(c, err, "Failed to add doctor")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.Store.ListDoctors(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve doctors")
		return
	}
	if doctors == nil {
		doctors = make([]models.Doctor, 0)
	}
	c.JSON(http.StatusOK, doctors)
}
