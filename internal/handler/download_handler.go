package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"plughub/internal/service"
	"plughub/pkg/logger"
)

// ContextKeyUserID is where the auth middleware leaves the authenticated
// caller's user id, if any.
const ContextKeyUserID = "userID"

type DownloadHandler struct {
	downloads service.DownloadService
	plugins   service.PluginService
}

type admissionResponse struct {
	Limited bool   `json:"limited"`
	Reason  string `json:"reason,omitempty"`
}

func NewDownloadHandler(downloads service.DownloadService, plugins service.PluginService) *DownloadHandler {
	return &DownloadHandler{downloads: downloads, plugins: plugins}
}

func (h *DownloadHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/plugins/:id/download", h.Download)
	g.GET("/plugins/:id/admission", h.Admission)
}

// Download serves the plugin artifact if the caller is admitted, then records
// the grant. The admission check and the event append bracket the transfer;
// they are not atomic, so the quota is best-effort under concurrency.
func (h *DownloadHandler) Download(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	userID := callerUserID(c)
	rawAddr := callerAddress(c)

	verdict, err := h.downloads.CheckAdmission(c.Request().Context(), id, userID, rawAddr, time.Now().UTC())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "plugin not found"})
		}
		// The store being unreachable is neither "limited" nor "not
		// limited"; fail closed with a retryable status.
		logger.Error("download admission check failed", "plugin_id", id, "error", err)
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "download check unavailable"})
	}
	if verdict.Limited {
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: verdict.Reason})
	}

	plugin, err := h.plugins.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	if err := c.Attachment(plugin.FilePath, artifactName(plugin.Name, plugin.Version, plugin.FilePath)); err != nil {
		return err
	}

	// The transfer succeeded; the grant becomes part of the counted history.
	if err := h.downloads.RecordDownload(c.Request().Context(), id, userID, rawAddr, time.Now().UTC()); err != nil {
		logger.Error("record download", "plugin_id", id, "error", err)
	}
	return nil
}

// Admission is a check-only probe: it returns the verdict the download
// endpoint would apply right now, without writing an event.
func (h *DownloadHandler) Admission(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	verdict, err := h.downloads.CheckAdmission(c.Request().Context(), id, callerUserID(c), callerAddress(c), time.Now().UTC())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "plugin not found"})
		}
		logger.Error("download admission check failed", "plugin_id", id, "error", err)
		return c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "download check unavailable"})
	}
	return c.JSON(http.StatusOK, admissionResponse{Limited: verdict.Limited, Reason: verdict.Reason})
}

func callerUserID(c echo.Context) *string {
	raw, ok := c.Get(ContextKeyUserID).(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	return &raw
}

func callerAddress(c echo.Context) *string {
	addr := c.RealIP()
	if addr == "" {
		return nil
	}
	return &addr
}

func artifactName(name, version, filePath string) string {
	ext := filepath.Ext(filePath)
	if ext == "" {
		ext = ".zip"
	}
	return name + "-" + version + ext
}
