package handlers

import (
	"errors"
	"net/http"

	"inkstudio/models"
	"inkstudio/services/pricing"
	"inkstudio/utils"

	"github.com/gin-gonic/gin"
)

// PostEstimate computes a price quote from tattoo parameters without needing
// a wizard session. The quote is advisory until a draft is submitted.
func PostEstimate(c *gin.Context) {
	var input struct {
		SizeCategory    models.SizeCategory `json:"size_category" binding:"required"`
		Style           string              `json:"style"`
		IsCoverUp       bool                `json:"is_cover_up"`
		IsTouchUp       bool                `json:"is_touch_up"`
		ScheduledDate   string              `json:"scheduled_date"`
		ScheduledTime   string              `json:"scheduled_time"`
		LoyaltyDiscount float64             `json:"loyalty_discount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.LoyaltyDiscount < 0 || input.LoyaltyDiscount >= 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "loyalty_discount must be in [0, 1)")
		return
	}

	est, err := pricing.BuildEstimate(pricing.EstimateInput{
		Size:            input.SizeCategory,
		Style:           input.Style,
		IsCoverUp:       input.IsCoverUp,
		IsTouchUp:       input.IsTouchUp,
		Date:            input.ScheduledDate,
		Time:            input.ScheduledTime,
		LoyaltyDiscount: input.LoyaltyDiscount,
	})
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownSize) {
			utils.JSONError(c, http.StatusBadRequest, "unknown size category", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	duration, err := pricing.EstimateDuration(input.SizeCategory, input.Style, input.IsCoverUp)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "unknown size category", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"estimate":           est,
		"estimated_duration": duration,
	})
}
