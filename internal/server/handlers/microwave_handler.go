package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/datalog/internal/domain/models"
	"github.com/mamadbah2/datalog/internal/service/records"
)

// MicrowaveHandler serves drying runs: the shared CRUD surface plus the
// post-production partial update.
type MicrowaveHandler struct {
	*LogHandler[models.MicrowaveLogCreate, models.MicrowaveLog]
	svc    *records.MicrowaveService
	logger *zap.Logger
}

// NewMicrowaveHandler constructs the drying-run HTTP adapter.
func NewMicrowaveHandler(svc *records.MicrowaveService, logger *zap.Logger) *MicrowaveHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MicrowaveHandler{
		LogHandler: NewLogHandler(svc.Service, logger),
		svc:        svc,
		logger:     logger,
	}
}

// Update applies post-production measurements to an existing run and
// returns the full updated record.
func (h *MicrowaveHandler) Update(c *gin.Context) {
	var patch models.MicrowaveLogUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}
