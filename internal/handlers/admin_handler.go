package handlers

import (
	"net/http"

	"github.com/bridgetunes/lottery-settlement/internal/settlement"
	"github.com/bridgetunes/lottery-settlement/internal/store"
	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the Ops API's read-only inspection and manual
// trigger surface over the settlement engine, thin by design: the
// scheduler drives the real invocations, this is only for operator
// troubleshooting.
type AdminHandler struct {
	Drawings     store.DrawingStore
	Orchestrator *settlement.Orchestrator
}

func NewAdminHandler(drawings store.DrawingStore, orchestrator *settlement.Orchestrator) *AdminHandler {
	return &AdminHandler{Drawings: drawings, Orchestrator: orchestrator}
}

// GetDrawingsByDate handles GET /admin/drawings/:date.
func (h *AdminHandler) GetDrawingsByDate(c *gin.Context) {
	date := c.Param("date")
	drawings, err := h.Drawings.ListDrawings(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "drawings": drawings})
}

// TriggerSettlement handles POST /admin/settlement/:date, running an
// out-of-band settlement pass for a date the scheduler already covers
// on its own cron cycle. Useful after a manual drawing correction.
func (h *AdminHandler) TriggerSettlement(c *gin.Context) {
	date := c.Param("date")
	if err := h.Orchestrator.Run(c.Request.Context(), date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "status": "settlement run complete"})
}
