package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"obsapp/internal/domain"
	"obsapp/internal/service"
	"obsapp/internal/validation"
)

var (
	errInvalidBody      = domain.ErrorResponse{Detail: "Invalid request body"}
	errInvalidMessageID = domain.ErrorResponse{Detail: "Message id must be an integer"}
	errMessageNotFound  = domain.ErrorResponse{Detail: "Message is not found"}
	errInternal         = domain.ErrorResponse{Detail: "Internal server error"}
	respHealthy         = domain.HealthResponse{Status: "healthy"}
)

type Handler struct {
	messages    MessageService
	processor   Processor
	validator   PayloadValidator
	metrics     MetricsRenderer
	metricsPath string
	logger      *slog.Logger
}

func New(
	messages MessageService,
	processor Processor,
	validator PayloadValidator,
	metrics MetricsRenderer,
	metricsPath string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		messages:    messages,
		processor:   processor,
		validator:   validator,
		metrics:     metrics,
		metricsPath: metricsPath,
		logger:      logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.POST("/process", h.Process)
	e.GET("/message/:id", h.GetMessage)
	e.GET(h.metricsPath, h.Metrics)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthy)
}

func (h *Handler) Process(c echo.Context) error {
	var req domain.ProcessRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Debug("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusUnprocessableEntity, errInvalidBody)
	}

	if err := h.validator.ValidateData(req.Data); err != nil {
		return h.handleValidationError(c, err)
	}

	out, err := h.processor.Process(c.Request().Context(), *req.Data)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		h.logger.Error("failed to process data", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}

	return c.JSON(http.StatusOK, domain.ProcessResponse{Echo: out})
}

func (h *Handler) GetMessage(c echo.Context) error {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errInvalidMessageID)
	}

	msg, err := h.messages.GetMessage(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			return c.JSON(http.StatusNotFound, errMessageNotFound)
		}
		h.logger.Error("failed to get message",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return c.JSON(http.StatusInternalServerError, errInternal)
	}

	return c.JSON(http.StatusOK, msg)
}

// Metrics renders the registry into a buffer first so a failed render never
// leaves a half-written exposition behind.
func (h *Handler) Metrics(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.metrics.Render(&buf); err != nil {
		h.logger.Error("failed to render metrics", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}
	return c.Blob(http.StatusOK, h.metrics.ContentType(), buf.Bytes())
}

func (h *Handler) handleValidationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrDataRequired),
		errors.Is(err, validation.ErrDataTooShort),
		errors.Is(err, validation.ErrDataTooLong):
		return c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: err.Error()})
	default:
		return c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: "validation failed"})
	}
}
