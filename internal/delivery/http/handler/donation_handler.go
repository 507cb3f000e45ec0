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

type DonationHandler struct {
	donationService *service.DonationService
	images          storage.ImageStore
}

func NewDonationHandler(donationService *service.DonationService, images storage.ImageStore) *DonationHandler {
	return &DonationHandler{donationService: donationService, images: images}
}

func (h *DonationHandler) Create(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form-data", "detail": err.Error()})
		return
	}

	input := entity.CreateDonationInput{
		Name:        formValue(form, "name"),
		Category:    formValue(form, "category"),
		Description: formValue(form, "description"),
		Address:     formValue(form, "address"),
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
		url, err := h.images.Upload(c.Request.Context(), storage.BucketDonationPictures, key, data, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		imageURLs = append(imageURLs, url)
	}

	donation, err := h.donationService.Create(c.Request.Context(), userID, input, imageURLs)
	if err != nil {
		if err == service.ErrAllFieldsRequired {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"donation": donation})
}

func (h *DonationHandler) Browse(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	donations, err := h.donationService.Browse(c.Request.Context(), c.Query("category"), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}

func (h *DonationHandler) Mine(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	donations, err := h.donationService.Mine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}
