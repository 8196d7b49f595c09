package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/doctors-api/internal/middleware"
	"github.com/doctorsportal/doctors-api/internal/models"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := bindNewDocument(c, &booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if booking.TreatmentID == "" || booking.Date == "" || booking.PatientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "treatmentId, date and patientId are required"})
		return
	}

	res, err := h.Bookings.Create(c.Request.Context(), &booking)
	if err != nil {
		h.storeFailure(c, err, "Failed to create booking")
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetMyAppointments lists the bookings of ?patientId=, which must be the
// caller's own uid.
func (h *Handler) GetMyAppointments(c *gin.Context) {
	patientID := c.Query("patientId")
	if patientID == "" || patientID != middleware.UID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	bookings, err := h.Bookings.ForPatient(c.Request.Context(), patientID)
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
