package handler

import (
	"net/http"

	entity "rentnest/internal/domain"
	service "rentnest/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		if err == service.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Save(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.SaveProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	profile, err := h.profileService.Save(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Public shows another user's profile, trimmed to the public fields.
func (h *ProfileHandler) Public(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	profile, err := h.profileService.Public(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Search(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	profiles, err := h.profileService.Search(c.Request.Context(), userID, c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	data, ext, contentType, err := readImage(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image", "detail": err.Error()})
		return
	}

	url, err := h.profileService.UploadPicture(c.Request.Context(), userID, data, ext, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profilePicture": url})
}
