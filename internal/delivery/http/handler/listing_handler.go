package handler

import (
	"net/http"
	"strconv"

	entity "rentnest/internal/domain"
	service "rentnest/internal/service/postgresql"
	"rentnest/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxListingImages = 4

type ListingHandler struct {
	listingService *service.ListingService
	images         storage.ImageStore
}

func NewListingHandler(listingService *service.ListingService, images storage.ImageStore) *ListingHandler {
	return &ListingHandler{listingService: listingService, images: images}
}

// Create takes multipart form data: the listing fields plus up to four
// images. Images land in object storage before the row is written.
func (h *ListingHandler) Create(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form-data", "detail": err.Error()})
		return
	}

	input := entity.CreateListingInput{
		Name:        formValue(form, "name"),
		Category:    formValue(form, "category"),
		Description: formValue(form, "description"),
		Address:     formValue(form, "address"),
		SharedOwner: formValue(form, "shared_owner"),
	}

	priceStr := formValue(form, "price_per_hour")
	input.PricePerHour, err = strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price_per_hour"})
		return
	}

	files := form.File["images"]
	if len(files) > maxListingImages {
		files = files[:maxListingImages]
	}

	var imageURLs []string
	for _, fh := range files {
		data, ext, contentType, err := readImage(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image", "detail": err.Error()})
			return
		}

		key := storage.ObjectKey(userID, ext)
		url, err := h.images.Upload(c.Request.Context(), storage.BucketProductPictures, key, data, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		imageURLs = append(imageURLs, url)
	}

	listing, err := h.listingService.Create(c.Request.Context(), userID, input, imageURLs)
	if err != nil {
		switch err {
		case service.ErrAllFieldsRequired, service.ErrInvalidPrice, service.ErrInvalidOwnerID:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrNotSharedOwner:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"listing": listing})
}

// Browse is the public marketplace view, optionally filtered by category.
func (h *ListingHandler) Browse(c *gin.Context) {
	var filter entity.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "detail": err.Error()})
		return
	}

	listings, err := h.listingService.Browse(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

func (h *ListingHandler) Mine(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	listings, err := h.listingService.Mine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// Moderate lets an admin force a listing status.
func (h *ListingHandler) Moderate(c *gin.Context) {
	adminID := c.MustGet("user_id").(uuid.UUID)

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	if err := h.listingService.Moderate(c.Request.Context(), adminID, listingID, req.Status); err != nil {
		switch err {
		case service.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrListingNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "listing status updated"})
}
