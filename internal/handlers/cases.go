package handlers

import (
	"errors"
	"net/http"

	"alerts_review/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response messages to avoid magic strings and typos.
const (
	errCaseNotFound      = "Case not found"
	errCaseNotOpen       = "Case is not open"
	errNoteRequired      = "Note text required"
	errResolveReason     = "Resolution reason required (min 5 characters)"
	errSuppressReason    = "Suppression reason required (min 5 characters)"
	errListCases         = "failed to load cases"
	errGetCase           = "failed to load case"
	errGetSnapshots      = "failed to load snapshots"
	errGetReview         = "failed to review case"
	errAddNote           = "failed to add note"
	errResolveCase       = "failed to resolve case"
	errSuppressCase      = "failed to suppress case"
	errInvalidBodyPrefix = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// caseError maps service errors to status codes. validationMsg replaces the
// message of input validation errors when set.
func (h *Handler) caseError(c *gin.Context, err error, validationMsg, userMsg, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrCaseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errCaseNotFound})
	case errors.Is(err, service.ErrCaseNotOpen):
		c.JSON(http.StatusConflict, gin.H{"error": errCaseNotOpen})
	case errors.Is(err, service.ErrNoteTooShort),
		errors.Is(err, service.ErrReasonTooShort),
		errors.Is(err, service.ErrInvalidTab):
		msg := err.Error()
		if validationMsg != "" {
			msg = validationMsg
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
	}
}

// Request DTOs.
type noteRequest struct {
	Text string `json:"text" example:"Called the site, heater relit"`
}

type resolveRequest struct {
	ResolvedReason string `json:"resolved_reason" example:"Heater replaced"`
}

type suppressRequest struct {
	Reason string `json:"reason" example:"Known sensor fault"`
}

// @Summary      List cases
// @Description  Newest first. tab defaults to open; counts cover every tab for the same agency.
// @Tags         cases
// @Produce      json
// @Param        tab        query  string  false  "Status tab"  Enums(open,resolved,suppressed,all)
// @Param        agency_id  query  string  false  "Only cases of this agency"
// @Success      200  {object}  map[string]interface{}  "count, counts, cases"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cases [get]
// @Security     BearerAuth
func (h *Handler) listCases(c *gin.Context) {
	tab, agency := c.Query("tab"), c.Query("agency_id")
	list, err := h.services.Cases.List(c.Request.Context(), service.CaseFilter{Tab: tab, AgencyID: agency})
	if err != nil {
		h.caseError(c, err, "", errListCases, "cases_list_failed", "tab", tab, "agency_id", agency)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(list.Cases),
		"counts": list.Counts,
		"cases":  list.Cases,
	})
}

// @Summary      Get case
// @Tags         cases
// @Produce      json
// @Param        case_id  path  string  true  "Case ID"
// @Success      200  {object}  models.Case
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cases/{case_id} [get]
// @Security     BearerAuth
func (h *Handler) getCase(c *gin.Context) {
	id := c.Param("case_id")
	cs, err := h.services.Cases.Get(c.Request.Context(), id)
	if err != nil {
		h.caseError(c, err, "", errGetCase, "case_get_failed", "case_id", id)
		return
	}
	c.JSON(http.StatusOK, cs)
}

// @Summary      Case snapshots
// @Description  Telemetry of the case's system from 2h before opening to 2h after resolution (or now), oldest first.
// @Tags         cases
// @Produce      json
// @Param        case_id  path  string  true  "Case ID"
// @Success      200  {array}   models.Snapshot
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cases/{case_id}/snapshots [get]
// @Security     BearerAuth
func (h *Handler) getSnapshots(c *gin.Context) {
	id := c.Param("case_id")
	series, err := h.services.Snapshots.ForCase(c.Request.Context(), id)
	if err != nil {
		h.caseError(c, err, "", errGetSnapshots, "case_snapshots_failed", "case_id", id)
		return
	}
	c.JSON(http.StatusOK, series)
}

// @Summary      Review case
// @Description  Case, rendered snapshot rows and the slow-heating verdict. Recomputed on every call.
// @Tags         cases
// @Produce      json
// @Param        case_id  path  string  true  "Case ID"
// @Success      200  {object}  service.CaseReview
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cases/{case_id}/review [get]
// @Security     BearerAuth
func (h *Handler) getReview(c *gin.Context) {
	id := c.Param("case_id")
	review, err := h.services.Reviewer.Review(c.Request.Context(), id)
	if err != nil {
		h.caseError(c, err, "", errGetReview, "case_review_failed", "case_id", id)
		return
	}
	c.JSON(http.StatusOK, review)
}

// @Summary      Add note
// @Description  Append-only; only open cases accept notes.
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        case_id  path  string       true  "Case ID"
// @Param        body     body  noteRequest  true  "Note"
// @Success      200  {object}  map[string]interface{}  "ok, note"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cases/{case_id}/notes [post]
// @Security     BearerAuth
func (h *Handler) addNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPrefix + err.Error()})
		return
	}
	id := c.Param("case_id")
	note, err := h.services.Cases.AddNote(c.Request.Context(), id, req.Text, currentAuthor(c))
	if err != nil {
		h.caseError(c, err, errNoteRequired, errAddNote, "case_add_note_failed", "case_id", id)
		return
	}
	h.log.Infow("case_note_added", "case_id", id, "note_id", note.ID, "author", note.Author)
	c.JSON(http.StatusOK, gin.H{"ok": true, "note": note})
}

// @Summary      Resolve case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        case_id  path  string          true  "Case ID"
// @Param        body     body  resolveRequest  true  "Resolution"
// @Success      200  {object}  map[string]interface{}  "ok, case_id"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cases/{case_id}/resolve [post]
// @Security     BearerAuth
func (h *Handler) resolveCase(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPrefix + err.Error()})
		return
	}
	id := c.Param("case_id")
	if err := h.services.Cases.Resolve(c.Request.Context(), id, req.ResolvedReason, currentAuthor(c)); err != nil {
		h.caseError(c, err, errResolveReason, errResolveCase, "case_resolve_failed", "case_id", id)
		return
	}
	h.log.Infow("case_resolved", "case_id", id, "author", currentAuthor(c))
	c.JSON(http.StatusOK, gin.H{"ok": true, "case_id": id})
}

// @Summary      Suppress case
// @Tags         cases
// @Accept       json
// @Produce      json
// @Param        case_id  path  string           true  "Case ID"
// @Param        body     body  suppressRequest  true  "Suppression"
// @Success      200  {object}  map[string]interface{}  "ok, case_id"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/cases/{case_id}/suppress [post]
// @Security     BearerAuth
func (h *Handler) suppressCase(c *gin.Context) {
	var req suppressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPrefix + err.Error()})
		return
	}
	id := c.Param("case_id")
	if err := h.services.Cases.Suppress(c.Request.Context(), id, req.Reason, currentAuthor(c)); err != nil {
		h.caseError(c, err, errSuppressReason, errSuppressCase, "case_suppress_failed", "case_id", id)
		return
	}
	h.log.Infow("case_suppressed", "case_id", id, "author", currentAuthor(c))
	c.JSON(http.StatusOK, gin.H{"ok": true, "case_id": id})
}
