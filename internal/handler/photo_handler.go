package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estate-service/internal/middleware"
	"estate-service/internal/model"
	"estate-service/internal/repository"
)

// PhotoHandler streams image blobs in and out of GridFS and keeps the
// image rows in step.
type PhotoHandler struct {
	Photos   *repository.PhotoRepository
	Images   *repository.ImageRepository
	Requests *repository.PropertyRequestRepository
}

func (h *PhotoHandler) RegisterRoutes(rg *gin.RouterGroup, auth, ownerOnly gin.HandlerFunc) {
	rg.POST("/property-requests/:id/images", auth, ownerOnly, h.UploadRequestImage)
	rg.GET("/property-requests/:id/images/:imageID", auth, h.DownloadRequestImage)
	rg.GET("/properties/:id/images/:imageID", h.DownloadPropertyImage)
}

// POST /api/property-requests/:id/images
// Multipart form: "file" plus optional "is_main". Only the owner of a still
// pending request may attach images.
func (h *PhotoHandler) UploadRequestImage(c *gin.Context) {
	requestID := c.Param("id")
	req, err := h.Requests.GetByID(c.Request.Context(), requestID)
	if err != nil {
		writeError(c, err)
		return
	}
	if req.OwnerID != c.GetString(middleware.CtxUserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return
	}
	if req.Status != model.RequestPending {
		c.JSON(http.StatusConflict, gin.H{"error": "request already decided"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot open file"})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("property_requests/%s_%s", requestID, fileHeader.Filename)
	fileID, err := h.Photos.Upload(file, filename)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	img := &model.PropertyRequestImage{
		ID:        uuid.NewString(),
		RequestID: requestID,
		FileID:    fileID,
		IsMain:    c.PostForm("is_main") == "true",
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Images.AddRequestImage(c.Request.Context(), img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record image"})
		return
	}
	c.JSON(http.StatusCreated, img)
}

// GET /api/property-requests/:id/images/:imageID
func (h *PhotoHandler) DownloadRequestImage(c *gin.Context) {
	img, err := h.Images.GetRequestImage(c.Request.Context(), c.Param("id"), c.Param("imageID"))
	if err != nil {
		writeError(c, err)
		return
	}
	data, err := h.Photos.Download(img.FileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "download failed"})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}

// GET /api/properties/:id/images/:imageID
func (h *PhotoHandler) DownloadPropertyImage(c *gin.Context) {
	img, err := h.Images.GetPropertyImage(c.Request.Context(), c.Param("id"), c.Param("imageID"))
	if err != nil {
		writeError(c, err)
		return
	}
	data, err := h.Photos.Download(img.FileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "download failed"})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", data)
}
