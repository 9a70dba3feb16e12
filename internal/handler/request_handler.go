package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estate-service/internal/middleware"
	"estate-service/internal/model"
	"estate-service/internal/service"
)

type propertyRequestStore interface {
	Create(ctx context.Context, req *model.PropertyRequest) error
	GetByOwner(ctx context.Context, ownerID string) ([]model.PropertyRequest, error)
}

type rentalSubmitter interface {
	Submit(ctx context.Context, clientID, propertyID string, in service.SubmitRentalInput) (*model.RentalRequest, error)
}

type rentalRequestReader interface {
	GetByClient(ctx context.Context, clientID string) ([]model.RentalRequest, error)
}

// RequestHandler covers both submission queues: owners' draft listings and
// clients' rental inquiries.
type RequestHandler struct {
	Requests propertyRequestStore
	Rentals  rentalSubmitter
	RentalQ  rentalRequestReader
}

func (h *RequestHandler) RegisterRoutes(rg *gin.RouterGroup, auth, ownerOnly, clientOnly gin.HandlerFunc) {
	rg.POST("/property-requests", auth, ownerOnly, h.CreatePropertyRequest)
	rg.GET("/my/property-requests", auth, ownerOnly, h.MyPropertyRequests)

	rg.POST("/properties/:id/rent-requests", auth, clientOnly, h.CreateRentalRequest)
	rg.GET("/my/rental-requests", auth, clientOnly, h.MyRentalRequests)
}

type propertyRequestDTO struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	PropertyType string  `json:"property_type" binding:"required,oneof=apartment villa office shop warehouse"`
	Address      string  `json:"address" binding:"required"`
	City         string  `json:"city" binding:"required"`
	Area         float64 `json:"area" binding:"required,gt=0"`
	Bedrooms     int     `json:"bedrooms" binding:"gte=0"`
	Bathrooms    int     `json:"bathrooms" binding:"gte=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
}

// POST /api/property-requests
func (h *RequestHandler) CreatePropertyRequest(c *gin.Context) {
	var req propertyRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	now := time.Now().UTC()
	pr := &model.PropertyRequest{
		ID:           uuid.NewString(),
		OwnerID:      c.GetString(middleware.CtxUserID),
		Title:        req.Title,
		Description:  req.Description,
		PropertyType: req.PropertyType,
		Address:      req.Address,
		City:         req.City,
		Area:         req.Area,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Price:        req.Price,
		Status:       model.RequestPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.Requests.Create(c.Request.Context(), pr); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, pr)
}

// GET /api/my/property-requests
func (h *RequestHandler) MyPropertyRequests(c *gin.Context) {
	list, err := h.Requests.GetByOwner(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []model.PropertyRequest{}
	}
	c.JSON(http.StatusOK, list)
}

type rentalRequestDTO struct {
	Message            string `json:"message" binding:"required"`
	PreferredStartDate string `json:"preferred_start_date" binding:"required"`
	DurationMonths     int    `json:"duration_months" binding:"required,gt=0"`
}

// POST /api/properties/:id/rent-requests
func (h *RequestHandler) CreateRentalRequest(c *gin.Context) {
	var req rentalRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	startDate, err := time.Parse("2006-01-02", req.PreferredStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferred_start_date, want YYYY-MM-DD"})
		return
	}

	rental, err := h.Rentals.Submit(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id"), service.SubmitRentalInput{
		Message:            req.Message,
		PreferredStartDate: startDate,
		DurationMonths:     req.DurationMonths,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// GET /api/my/rental-requests
func (h *RequestHandler) MyRentalRequests(c *gin.Context) {
	list, err := h.RentalQ.GetByClient(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []model.RentalRequest{}
	}
	c.JSON(http.StatusOK, list)
}
