package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"estate-service/internal/middleware"
	"estate-service/internal/model"
	"estate-service/internal/repository"
)

// catalogPageSize is the fixed page size of the public catalog.
const catalogPageSize = 12

// featuredCount is how many listings the home endpoint shows.
const featuredCount = 6

type featuredCache interface {
	Get(ctx context.Context) ([]model.Property, bool)
	Set(ctx context.Context, list []model.Property) error
}

// PropertyHandler serves the public catalog and the owner's own listings.
type PropertyHandler struct {
	Repo   *repository.PropertyRepository
	Images *repository.ImageRepository
	Cache  featuredCache
}

func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup, auth, ownerOnly gin.HandlerFunc) {
	rg.GET("/properties", h.Browse)
	rg.GET("/properties/featured", h.Featured)
	rg.GET("/properties/:id", h.Detail)

	rg.GET("/my/properties", auth, ownerOnly, h.MyProperties)
}

type pageMeta struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// GET /api/properties?type=&city=&min_price=&max_price=&page=
func (h *PropertyHandler) Browse(c *gin.Context) {
	var filter repository.PropertyFilter
	filter.PropertyType = c.Query("type")
	filter.City = c.Query("city")
	if v := c.Query("min_price"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if v := c.Query("max_price"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &max
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	list, err := h.Repo.GetFiltered(c.Request.Context(), filter, catalogPageSize, (page-1)*catalogPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total, err := h.Repo.CountFiltered(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []model.Property{}
	}
	c.JSON(http.StatusOK, gin.H{
		"data": list,
		"meta": pageMeta{Page: page, PerPage: catalogPageSize, Total: total},
	})
}

// GET /api/properties/featured
func (h *PropertyHandler) Featured(c *gin.Context) {
	if h.Cache != nil {
		if list, ok := h.Cache.Get(c.Request.Context()); ok {
			c.JSON(http.StatusOK, list)
			return
		}
	}

	list, err := h.Repo.GetFeatured(c.Request.Context(), featuredCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []model.Property{}
	}
	if h.Cache != nil {
		// Cache failures only cost the next request a DB round trip.
		_ = h.Cache.Set(c.Request.Context(), list)
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/properties/:id
func (h *PropertyHandler) Detail(c *gin.Context) {
	property, err := h.Repo.GetApprovedByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	images, err := h.Images.ListPropertyImages(c.Request.Context(), property.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if images == nil {
		images = []model.PropertyImage{}
	}
	c.JSON(http.StatusOK, gin.H{"property": property, "images": images})
}

// GET /api/my/properties
func (h *PropertyHandler) MyProperties(c *gin.Context) {
	list, err := h.Repo.GetByOwner(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if list == nil {
		list = []model.Property{}
	}
	c.JSON(http.StatusOK, list)
}
