package handler

import (
	"net/http"
	"strconv"
	"time"

	entity "rentnest/internal/domain"
	service "rentnest/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	msg, err := h.messageService.Send(c.Request.Context(), userID, input)
	if err != nil {
		switch err {
		case service.ErrEmptyMessage, service.ErrSelfMessage:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrReceiverNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// Conversation returns a page of messages with the peer in the path.
// ?limit= caps the page, ?before= (RFC 3339) walks back in time.
func (h *MessageHandler) Conversation(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	otherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid peer id"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	var before *time.Time
	if raw := c.Query("before"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid before timestamp, want RFC 3339"})
			return
		}
		before = &t
	}

	page, err := h.messageService.Conversation(c.Request.Context(), userID, otherID, limit, before)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *MessageHandler) Contacts(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	contacts, err := h.messageService.Contacts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if contacts == nil {
		contacts = []entity.Profile{}
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}
