package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"

	"github.com/doctorsportal/doctors-api/internal/middleware"
	"github.com/doctorsportal/doctors-api/internal/services"
	"github.com/doctorsportal/doctors-api/internal/store"
	"github.com/doctorsportal/doctors-api/internal/utils"
)

const livenessMessage = "Doctors Server is Running"

// Handler holds the store and domain services every route is bound to.
type Handler struct {
	Store        store.Store
	Tokens       *utils.TokenIssuer
	Availability *services.AvailabilityService
	Bookings     *services.BookingService
	Users        *services.UserService
	Roles        *services.RoleAuthority
	Logger       zerolog.Logger
}

func NewHandler(st store.Store, tokens *utils.TokenIssuer, defaultDate string, logger zerolog.Logger) *Handler {
	return &Handler{
		Store:        st,
		Tokens:       tokens,
		Availability: services.NewAvailabilityService(st, st, defaultDate),
		Bookings:     services.NewBookingService(st),
		Users:        services.NewUserService(st, tokens),
		Roles:        services.NewRoleAuthority(st),
		Logger:       logger,
	}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	auth := middleware.AuthMiddleware(h.Tokens)

	r.GET("/", h.Liveness)
	r.GET("/health/db", h.Readiness)

	r.GET("/services", h.ListServices)
	r.GET("/categories", h.ListCategories)
	r.GET("/available", h.GetAvailable)

	r.POST("/booking", h.CreateBooking)
	r.GET("/myappointment", auth, h.GetMyAppointments)

	r.GET("/users", h.ListUsers)
	r.PUT("/user/:uid", h.UpsertUser)
	r.PUT("/user/role/:uid", auth, h.ChangeUserRole)
	r.GET("/admin/:uid", h.GetAdminStatus)

	r.POST("/add-doctor", auth, h.AddDoctor)
	r.GET("/doctors", auth, h.ListDoctors)
}

func (h *Handler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, livenessMessage)
}

func (h *Handler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		h.Logger.Warn().Err(err).Msg("store readiness check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// storeFailure logs err against the request and answers 500 with msg.
func (h *Handler) storeFailure(c *gin.Context, err error, msg string) {
	_ = c.Error(err)
	h.Logger.Error().Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// bindOptionalJSON binds the request body into obj, treating an empty body as
// an empty object.
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// bindNewDocument binds a JSON object for insertion into obj. Any "_id" the
// client sent is dropped, since ids are assigned by the store.
func bindNewDocument(c *gin.Context, obj interface{}) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("request body must be a JSON object")
	}
	if _, ok := fields["_id"]; ok {
		delete(fields, "_id")
		if raw, err = json.Marshal(fields); err != nil {
			return err
		}
	}
	return binding.JSON.BindBody(raw, obj)
}
