package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/01moynul/taptosell-console/internal/analytics"
	"github.com/01moynul/taptosell-console/internal/apiclient"
	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const settingsPath = "admin/settings"

//
// --- Admin: Platform Settings ---
//

// GetSettings is the handler for GET /v1/admin/settings
// Secret values (API keys, passwords) are masked.
func (h *Handlers) GetSettings(c *gin.Context) {
	settings, err := h.loadSettings(h.requestContext(c))
	if err != nil {
		h.noticesFor(c).Error("Failed to load settings")
		respondUpstreamError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings.Masked(), "keys": settings.Keys()})
}

// UpdateSettings is the handler for PUT /v1/admin/settings
// Only the submitted keys are written. A masked value sent back unchanged is skipped.
func (h *Handlers) UpdateSettings(c *gin.Context) {
	var form forms.SettingsForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for k, v := range form.Values {
		if models.IsSecretKey(k) && strings.HasPrefix(v, "••••") {
			delete(form.Values, k)
		}
	}

	submitDialog(c, h, form, func(ctx context.Context, f forms.SettingsForm) error {
		_, err := h.Client.Put(ctx, settingsPath, f.Payload())
		h.recordMutation(ctx, settingsMutation(err))
		if err != nil {
			h.noticesFor(c).Error(messageOr(err, "Failed to update settings"))
			return err
		}
		h.noticesFor(c).Success("Settings updated successfully")
		if _, err := h.loadSettings(ctx); err != nil {
			h.noticesFor(c).Error("Failed to load settings")
		}
		return nil
	}, http.StatusOK, func() any { return h.cachedSettings().Masked() })
}

func (h *Handlers) loadSettings(ctx context.Context) (models.PlatformSettings, error) {
	raw, err := h.Client.GetObject(ctx, settingsPath)
	if err != nil {
		return nil, err
	}
	settings := models.NormalizeSettings(raw)

	h.settingsMu.Lock()
	h.settings = settings
	h.settingsMu.Unlock()
	return settings, nil
}

func (h *Handlers) cachedSettings() models.PlatformSettings {
	h.settingsMu.RLock()
	defer h.settingsMu.RUnlock()
	return h.settings
}

// MaintenanceMode reports the last known maintenance_mode setting.
func (h *Handlers) MaintenanceMode(context.Context) bool {
	return strings.EqualFold(h.cachedSettings()["maintenance_mode"], "true")
}

//
// --- Admin: Analytics ---
//

// GetAnalytics is the handler for GET /v1/admin/analytics?period=week|month&chart=bar|area
func (h *Handlers) GetAnalytics(c *gin.Context) {
	summary, err := analytics.Load(h.requestContext(c), h.Client)
	if err != nil {
		h.noticesFor(c).Error(messageOr(err, "Failed to load analytics"))
		respondUpstreamError(c, err, "Failed to load analytics")
		return
	}
	view := analytics.ParseView(c.Query("period"), c.Query("chart"))
	c.JSON(http.StatusOK, view.Render(summary))
}

//
// --- Admin: Audit Trail ---
//

// GetAuditLog is the handler for GET /v1/admin/audit?limit=
func (h *Handlers) GetAuditLog(c *gin.Context) {
	entries, err := h.Audit.Recent(c.Request.Context(), queryLimit(c, 50, 200))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load audit log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// RefreshSettings reloads the settings cache. main runs it on a ticker so
// maintenance mode takes effect without an admin opening the settings page.
func (h *Handlers) RefreshSettings(ctx context.Context) error {
	_, err := h.loadSettings(apiclient.WithRequestID(ctx, uuid.NewString()))
	return err
}
