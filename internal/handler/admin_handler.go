package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estate-service/internal/model"
	"estate-service/internal/service"
)

type moderator interface {
	ApproveProperty(ctx context.Context, requestID, notes string) (*model.Property, error)
	RejectProperty(ctx context.Context, requestID, notes string) error
	ApproveRental(ctx context.Context, requestID, notes string) error
	RejectRental(ctx context.Context, requestID, notes string) error
	Dashboard(ctx context.Context) (*service.DashboardStats, error)
}

type requestQueue interface {
	GetAll(ctx context.Context, limit, offset int) ([]model.PropertyRequest, error)
}

type rentalQueue interface {
	GetAll(ctx context.Context, limit, offset int) ([]model.RentalRequest, error)
}

// AdminHandler exposes the moderation panel: the queues, the dashboard and
// the approve/reject entry points. All routes require the admin role.
type AdminHandler struct {
	Moderation moderator
	Requests   requestQueue
	Rentals    rentalQueue
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, auth, adminOnly gin.HandlerFunc) {
	admin := rg.Group("/admin", auth, adminOnly)
	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/property-requests", h.PropertyRequests)
	admin.GET("/rental-requests", h.RentalRequests)
	admin.POST("/property-requests/:id/approve", h.ApproveProperty)
	admin.POST("/property-requests/:id/reject", h.RejectProperty)
	admin.POST("/rental-requests/:id/approve", h.ApproveRental)
	admin.POST("/rental-requests/:id/reject", h.RejectRental)
}

// notesDTO is the optional moderation note attached to a decision.
type notesDTO struct {
	AdminNotes string `json:"admin_notes"`
}

func bindNotes(c *gin.Context) string {
	var req notesDTO
	// The body is optional; a missing or empty body means no notes.
	_ = c.ShouldBindJSON(&req)
	return req.AdminNotes
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.Moderation.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) PropertyRequests(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.Requests.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []model.PropertyRequest{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) RentalRequests(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	list, err := h.Rentals.GetAll(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []model.RentalRequest{}
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/property-requests/:id/approve
func (h *AdminHandler) ApproveProperty(c *gin.Context) {
	property, err := h.Moderation.ApproveProperty(c.Request.Context(), c.Param("id"), bindNotes(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "approved", "property": property})
}

// POST /api/admin/property-requests/:id/reject
func (h *AdminHandler) RejectProperty(c *gin.Context) {
	if err := h.Moderation.RejectProperty(c.Request.Context(), c.Param("id"), bindNotes(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rejected"})
}

// POST /api/admin/rental-requests/:id/approve
func (h *AdminHandler) ApproveRental(c *gin.Context) {
	if err := h.Moderation.ApproveRental(c.Request.Context(), c.Param("id"), bindNotes(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "approved"})
}

// POST /api/admin/rental-requests/:id/reject
func (h *AdminHandler) RejectRental(c *gin.Context) {
	if err := h.Moderation.RejectRental(c.Request.Context(), c.Param("id"), bindNotes(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rejected"})
}
