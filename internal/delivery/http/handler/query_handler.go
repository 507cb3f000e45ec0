package handler

import (
	"net/http"

	entity "rentnest/internal/domain"
	service "rentnest/internal/service/postgresql"
	"rentnest/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueryHandler struct {
	queryService *service.QueryService
	images       storage.ImageStore
}

func NewQueryHandler(queryService *service.QueryService, images storage.ImageStore) *QueryHandler {
	return &QueryHandler{queryService: queryService, images: images}
}

// Submit files a help & support query with an optional screenshot.
func (h *QueryHandler) Submit(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form-data", "detail": err.Error()})
		return
	}

	input := entity.CreateQueryInput{
		Title:   formValue(form, "title"),
		Content: formValue(form, "content"),
	}

	var imageURL string
	if files := form.File["image"]; len(files) > 0 {
		data, ext, contentType, err := readImage(files[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image", "detail": err.Error()})
			return
		}

		key := storage.ObjectKey(userID, ext)
		imageURL, err = h.images.Upload(c.Request.Context(), storage.BucketQueryPictures, key, data, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	q, err := h.queryService.Submit(c.Request.Context(), userID, input, imageURL)
	if err != nil {
		if err == service.ErrAllFieldsRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"query": q})
}

// List is the admin support inbox.
func (h *QueryHandler) List(c *gin.Context) {
	queries, err := h.queryService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"queries": queries})
}
