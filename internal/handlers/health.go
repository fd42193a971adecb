package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Description  Verifies the case store is reachable.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "ok, case_count"
// @Failure      500  {object}  map[string]interface{}  "ok, error"
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	n, err := h.services.Health.CaseCount(c.Request.Context())
	if err != nil {
		h.log.Errorw("health_check_failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "case_count": n})
}
