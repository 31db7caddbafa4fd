package http

import (
	"log/slog"
	"net/http"
	"sync"

	"logistics/internal/adapters/in/http/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// specDoc serves the embedded OpenAPI document to the swagger UI.
type specDoc struct {
	json string
}

func (d specDoc) ReadDoc() string {
	return d.json
}

var registerSpec sync.Once

// NewRouter builds the echo instance: request logging, panic recovery, OpenAPI request
// validation, the API routes, /health and the swagger UI.
func NewRouter(server *Server, logger *slog.Logger) (*echo.Echo, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	specJSON, err := swagger.MarshalJSON()
	if err != nil {
		return nil, err
	}
	registerSpec.Do(func() {
		swag.Register(swag.Name, specDoc{json: string(specJSON)})
	})

	validate, err := requestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(logger.With("component", "http")))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api.RegisterHandlers(e.Group("", validate), server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
