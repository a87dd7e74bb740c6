package handlers

import (
	"errors"
	"net/http"

	"dharmachain/models"
	"dharmachain/services/donation"
	"dharmachain/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DonationHandler struct {
	Service donation.DonationService
}

func NewDonationHandler(svc donation.DonationService) *DonationHandler {
	return &DonationHandler{Service: svc}
}

// DonateHandler takes a donation in testing mode and returns the receipt.
func (h *DonationHandler) DonateHandler(c *gin.Context) {
	var req models.DonationRequest
	// Rule failures are reported by Donate, which checks the normalized form.
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, isValidation := utils.ValidationFields(req, err, nil); !isValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
	}

	receipt, err := h.Service.Donate(c.Request.Context(), req)
	var verrs donation.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, e := range verrs {
			fields[e.Field] = e.Message
		}
		utils.JSONFieldErrors(c, "Invalid donation", fields)
		return
	case err != nil:
		getLogger(c).Error("Donation failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Donation could not be completed", "Please try again later.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your donation! A confirmation email has been sent.",
		"receipt": receipt,
	})
}

func (h *DonationHandler) PresetsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currency": models.DonationCurrency,
		"minimum":  models.MinDonationAmount,
		"amounts":  h.Service.Presets(),
	})
}
