package handler

import (
	"net/http"

	entity "rentnest/internal/domain"
	service "rentnest/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OwnershipHandler struct {
	ownershipService *service.OwnershipService
}

func NewOwnershipHandler(ownershipService *service.OwnershipService) *OwnershipHandler {
	return &OwnershipHandler{ownershipService: ownershipService}
}

func (h *OwnershipHandler) SendRequest(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.SendOwnershipRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	rel, err := h.ownershipService.SendRequest(c.Request.Context(), userID, input.RecipientID)
	if err != nil {
		switch err {
		case service.ErrSelfRequest:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrRecipientNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrRelationExists:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, rel)
}

func (h *OwnershipHandler) Accept(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	requesterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid requester id"})
		return
	}

	if err := h.ownershipService.AcceptRequest(c.Request.Context(), userID, requesterID); err != nil {
		if err == service.ErrRequestNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request accepted"})
}

func (h *OwnershipHandler) Decline(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	requesterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid requester id"})
		return
	}

	if err := h.ownershipService.DeclineRequest(c.Request.Context(), userID, requesterID); err != nil {
		if err == service.ErrRequestNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request declined"})
}

func (h *OwnershipHandler) Remove(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	peerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid peer id"})
		return
	}

	if err := h.ownershipService.RemoveOwnership(c.Request.Context(), userID, peerID); err != nil {
		if err == service.ErrRelationNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ownership removed"})
}

func (h *OwnershipHandler) Owners(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	owners, err := h.ownershipService.Owners(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"owners": owners})
}

func (h *OwnershipHandler) Requests(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	requests, err := h.ownershipService.Requests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Candidates lists profiles the user could still send a request to.
func (h *OwnershipHandler) Candidates(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	candidates, err := h.ownershipService.Candidates(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if candidates == nil {
		candidates = []entity.Profile{}
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
