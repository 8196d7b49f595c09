package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doctorsportal/doctors-api/internal/middleware"
	"github.com/doctorsportal/doctors-api/internal/models"
	"github.com/doctorsportal/doctors-api/internal/services"
)

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.storeFailure(c, err, "Failed to retrieve users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpsertUser creates the profile for :uid on first sight and leaves an
// existing one as stored. Either way the caller gets a fresh token.
func (h *Handler) UpsertUser(c *gin.Context) {
	uid := c.Param("uid")
	var payload models.User
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := h.Users.Upsert(c.Request.Context(), uid, &payload)
	if errors.Is(err, services.ErrInvalidRole) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.storeFailure(c, err, "Failed to save user")
		return
	}
	c.JSON(http.StatusOK, res)
}

type changeRoleRequest struct {
	RequesterUID string `json:"requesterUid"`
	Role         string `json:"role"`
}

// ChangeUserRole sets the role of :uid. Only an admin may do it, and the
// requester named in the body must be the token holder.
func (h *Handler) ChangeUserRole(c *gin.Context) {
	var req changeRoleRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	caller := middleware.UID(c)
	if req.RequesterUID == "" {
		req.RequesterUID = caller
	}
	if req.RequesterUID != caller {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}
	if req.Role == "" {
		req.Role = models.RoleAdmin
	}

	res, err := h.Roles.ChangeRole(c.Request.Context(), req.RequesterUID, c.Param("uid"), req.Role)
	switch {
	case errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRequesterNotFound), errors.Is(err, services.ErrNotAdmin):
		h.Logger.Info().Str("requester", req.RequesterUID).Str("target", c.Param("uid")).Err(err).Msg("role change refused")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case err != nil:
		h.storeFailure(c, err, "Failed to update role")
	default:
		c.JSON(http.StatusOK, res)
	}
}

func (h *Handler) GetAdminStatus(c *gin.Context) {
	isAdmin, err := h.Roles.IsAdmin(c.Request.Context(), c.Param("uid"))
	if err != nil {
		h.storeFailure(c, err, "Failed to look up user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}
