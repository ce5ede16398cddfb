package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/hestia/internal/config"
	"github.com/UnknownOlympus/hestia/internal/errs"
	"github.com/UnknownOlympus/hestia/internal/handlers"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/labstack/echo/v4"
)

// API is the employee HTTP server.
type API struct {
	echo            *echo.Echo
	server          *http.Server
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// NewAPI wires routes, middleware and the error handler around repo.
func NewAPI(
	cfg config.HTTPConfig,
	log *slog.Logger,
	appMetrics *metrics.Metrics,
	repo repository.EmployeeRepoIface,
) *API {
	log = log.With(slog.String("division", "api"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	api := &API{
		echo: e,
		server: &http.Server{
			Addr:              cfg.Address,
			Handler:           e,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		log:             log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	e.HTTPErrorHandler = api.errorHandler

	e.Use(
		requestID(),
		observeRequests(appMetrics),
		requestLogger(log),
		recoverer(),
	)

	registerEmployeeRoutes(e, handlers.NewEmployees(log, repo))

	return api
}

func registerEmployeeRoutes(e *echo.Echo, employees *handlers.Employees) {
	group := e.Group("/employees")

	for _, root := range []string{"/", ""} {
		group.POST(root, employees.Create)
		group.GET(root, employees.List)
	}

	group.GET("/:id", employees.Get)
	group.PUT("/:id", employees.Update)
	group.DELETE("/:id", employees.Delete)
}

func (a *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.echo.ServeHTTP(w, r)
}

// Run serves the API until ctx is cancelled.
func (a *API) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "Starting API server", "addr", a.server.Addr)

	return serve(ctx, a.log, a.server, a.shutdownTimeout)
}

// errorHandler is the final error funnel: it logs the original error and writes an errs.HTTPError body.
func (a *API) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr := toHTTPError(err)

	log := a.log.With(
		slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		slog.Int("status", httpErr.Status),
	)
	if httpErr.Status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request().Context(), "Request failed", sl.Err(err))
	} else {
		log.DebugContext(c.Request().Context(), "Request rejected", sl.Err(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.Status)
	} else {
		err = c.JSON(httpErr.Status, httpErr)
	}
	if err != nil {
		log.ErrorContext(c.Request().Context(), "Failed to write error response", sl.Err(err))
	}
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			return errs.NewNotFoundError("Route not found")
		}

		result := errs.FromStatus(echoErr.Code)
		if msg, ok := echoErr.Message.(string); ok {
			result.Message = msg
		}
		return result
	}

	return errs.NewInternalServerError()
}
