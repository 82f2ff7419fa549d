package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/datalog/internal/repository"
	"github.com/mamadbah2/datalog/internal/service/records"
)

const defaultListLimit = 100

// LogHandler adapts one record-kind service to HTTP. The same generic
// handler serves all four kinds; the microwave kind layers its update on
// top (see MicrowaveHandler).
type LogHandler[C, T any] struct {
	svc    *records.Service[C, T]
	logger *zap.Logger
}

// NewLogHandler constructs the HTTP handler adapter for one record kind.
func NewLogHandler[C, T any](svc *records.Service[C, T], logger *zap.Logger) *LogHandler[C, T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogHandler[C, T]{svc: svc, logger: logger}
}

// Create ingests a new record and returns the persisted copy, including the
// server-assigned id, timestamp, and any derived fields.
func (h *LogHandler[C, T]) Create(c *gin.Context) {
	var payload C
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("invalid create payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), &payload)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// List returns records newest first, filtered by exact username when the
// query parameter is present. skip defaults to 0 and limit to 100.
func (h *LogHandler[C, T]) List(c *gin.Context) {
	skip, err := intQuery(c, "skip", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, err := intQuery(c, "limit", defaultListLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recs, err := h.svc.List(c.Request.Context(), repository.ListOptions{
		Username: c.Query("username"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recs)
}

// Get fetches a single record by id.
func (h *LogHandler[C, T]) Get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Delete removes a record by id and responds with no payload.
func (h *LogHandler[C, T]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LogHandler[C, T]) respondError(c *gin.Context, err error) {
	respondError(c, h.logger, err)
}

// respondError maps the service error taxonomy onto HTTP statuses:
// validation failures are the caller's fault, missing records are 404, and
// anything else is a server-side persistence failure.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErr *records.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, records.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("query parameter " + name + " must be an integer")
	}
	return value, nil
}
