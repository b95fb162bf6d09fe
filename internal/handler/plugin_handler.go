package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"plughub/internal/model"
	"plughub/internal/service"
)

type PluginHandler struct {
	service service.PluginService
}

type registerPluginRequest struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Description *string `json:"description"`
	FilePath    string  `json:"filePath"`
}

type pluginResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func NewPluginHandler(service service.PluginService) *PluginHandler {
	return &PluginHandler{service: service}
}

func (h *PluginHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/plugins", h.Register)
	g.GET("/plugins", h.List)
	g.GET("/plugins/:id", h.Get)
}

func (h *PluginHandler) Register(c echo.Context) error {
	var req registerPluginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	plugin, err := h.service.Register(c.Request().Context(), req.Name, req.Version, req.Description, req.FilePath)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toPluginResponse(plugin))
}

func (h *PluginHandler) List(c echo.Context) error {
	plugins, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]pluginResponse, 0, len(plugins))
	for _, plugin := range plugins {
		response = append(response, toPluginResponse(plugin))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *PluginHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	plugin, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toPluginResponse(plugin))
}

func toPluginResponse(plugin model.Plugin) pluginResponse {
	return pluginResponse{
		ID:          plugin.ID,
		Name:        plugin.Name,
		Version:     plugin.Version,
		Description: plugin.Description,
		CreatedAt:   plugin.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   plugin.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
