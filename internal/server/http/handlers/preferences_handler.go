package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sellerdesk/sellerdesk/internal/domain/model"
	"github.com/sellerdesk/sellerdesk/internal/server/http/dto"
)

// PreferencesHandler manages per-customer dashboard preferences.
type PreferencesHandler struct {
	facade PreferenceFacade
}

// NewPreferencesHandler constructs PreferencesHandler.
func NewPreferencesHandler(facade PreferenceFacade) *PreferencesHandler {
	return &PreferencesHandler{facade: facade}
}

// Get handles GET /api/preferences.
func (h *PreferencesHandler) Get(c *gin.Context) {
	prefs, err := h.facade.Preferences(c.Request.Context(), CurrentCustomerID(c))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toPreferencesResponse(prefs))
}

// Put handles PUT /api/preferences.
func (h *PreferencesHandler) Put(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed preferences payload"})
		return
	}

	saved, err := h.facade.SavePreferences(c.Request.Context(), &model.Preferences{
		CustomerID:          CurrentCustomerID(c),
		OnboardingCompleted: req.OnboardingCompleted,
		DefaultPageSize:     req.DefaultPageSize,
		RecentOnly:          req.RecentOnly,
	})
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toPreferencesResponse(saved))
}

func toPreferencesResponse(prefs *model.Preferences) dto.PreferencesResponse {
	return dto.PreferencesResponse{
		CustomerID:          prefs.CustomerID,
		OnboardingCompleted: prefs.OnboardingCompleted,
		DefaultPageSize:     prefs.DefaultPageSize,
		RecentOnly:          prefs.RecentOnly,
		UpdatedAt:           prefs.UpdatedAt,
	}
}
