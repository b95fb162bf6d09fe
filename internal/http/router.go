package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"plughub/internal/handler"
)

// NewRouter assembles the echo instance: ambient middleware plus the /api
// route groups of each handler.
func NewRouter(pluginHandler *handler.PluginHandler, downloadHandler *handler.DownloadHandler, jwtSecret string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger())
	e.Use(UserClaimMiddleware(jwtSecret))

	api := e.Group("/api")
	pluginHandler.RegisterRoutes(api)
	downloadHandler.RegisterRoutes(api)

	return e
}
