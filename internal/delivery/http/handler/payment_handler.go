package handler

import (
	"net/http"

	entity "rentnest/internal/domain"
	service "rentnest/internal/service/postgresql"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Get(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	pm, err := h.paymentService.GetPaymentMethod(c.Request.Context(), userID)
	if err != nil {
		if err == service.ErrPaymentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, pm)
}

func (h *PaymentHandler) Save(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	var input entity.SavePaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
		return
	}

	pm, err := h.paymentService.SavePaymentMethod(c.Request.Context(), userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pm)
}

func (h *PaymentHandler) Rewards(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	rewards, err := h.paymentService.GetRewards(c.Request.Context(), userID)
	if err != nil {
		if err == service.ErrNoRewards {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, rewards)
}
