package handlers

import (
	"errors"
	"net/http"
	"time"

	"inkstudio/middleware"
	bookingSvc "inkstudio/services/booking"
	"inkstudio/services/wizard"
	"inkstudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	WizardService  *wizard.Service
	BookingService *bookingSvc.Service
)

const clientTokenTTL = 30 * 24 * time.Hour

// StartWizard opens a fresh booking draft and issues the token the client
// presents on every later wizard call.
func StartWizard(c *gin.Context) {
	clientID := uuid.NewString()
	token, err := utils.GenerateClientToken(clientID, clientTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue client token", "")
		return
	}

	draft, err := WizardService.Start(c.Request.Context(), clientID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to start wizard", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "draft": draft})
}

// GetDraft returns the caller's current draft.
func GetDraft(c *gin.Context) {
	draft, err := WizardService.Get(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		if errors.Is(err, wizard.ErrDraftNotFound) {
			utils.JSONError(c, http.StatusNotFound, "no draft in progress", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load draft", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraft applies a partial edit; estimates refresh automatically when a
// price-relevant field changes.
func UpdateDraft(c *gin.Context) {
	var patch wizard.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := WizardService.Update(c.Request.Context(), middleware.ClientID(c), patch)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			utils.JSONError(c, http.StatusNotFound, "no draft in progress", "")
		default:
			utils.JSONError(c, http.StatusBadRequest, "failed to update draft", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// NextStep advances the wizard once the current step is complete.
func NextStep(c *gin.Context) {
	draft, err := WizardService.Next(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			utils.JSONError(c, http.StatusNotFound, "no draft in progress", "")
		case errors.Is(err, wizard.ErrStepIncomplete):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "draft": draft})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to advance wizard", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// BackStep steps the wizard backwards, keeping entered data.
func BackStep(c *gin.Context) {
	draft, err := WizardService.Back(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		if errors.Is(err, wizard.ErrDraftNotFound) {
			utils.JSONError(c, http.StatusNotFound, "no draft in progress", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to step back", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ResetDraft abandons the current draft entirely.
func ResetDraft(c *gin.Context) {
	if err := WizardService.Reset(c.Request.Context(), middleware.ClientID(c)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset draft", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// SubmitBooking converts the completed draft into a booking. The slot is
// re-checked under a lock, so a 409 here means someone else took it first.
func SubmitBooking(c *gin.Context) {
	result, err := BookingService.Submit(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrDraftNotFound):
			utils.JSONError(c, http.StatusNotFound, "no draft in progress", "")
		case errors.Is(err, bookingSvc.ErrDraftIncomplete):
			utils.JSONError(c, http.StatusUnprocessableEntity, "draft incomplete", err.Error())
		case errors.Is(err, bookingSvc.ErrSlotConflict):
			utils.JSONError(c, http.StatusConflict, "slot no longer available", "pick another time")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to submit booking", "")
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}
