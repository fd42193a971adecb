package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"alerts_review/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List case activity
// @Description  Audit trail of reviewer actions, oldest first. A date-only 'to' is inclusive of the whole day.
// @Tags         activity
// @Produce      json
// @Param        from     query  string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-01)
// @Param        to       query  string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2025-08-31)
// @Param        type     query  string  false  "Activity type"  Enums(NOTE_ADDED,CASE_RESOLVED,CASE_SUPPRESSED)
// @Param        case_id  query  string  false  "Only activity of this case"
// @Success      200  {object}  map[string]interface{}  "count, activity"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/activity [get]
// @Security     BearerAuth
func (h *Handler) getActivity(c *gin.Context) {
	var (
		from, to time.Time
		err      error
	)
	if qs := c.Query("from"); qs != "" {
		if from, err = parseQueryTime(qs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		if to, err = parseQueryTime(qs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Second)
		}
	}

	f := service.ActivityFilter{From: from, To: to, Type: c.Query("type"), CaseID: c.Query("case_id")}
	items, err := h.services.ActivityLog.List(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) || errors.Is(err, service.ErrInvalidActivityType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load activity", "activity_list_failed", err,
			"from", from, "to", to, "type", f.Type, "case_id", f.CaseID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(items),
		"activity": items,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
