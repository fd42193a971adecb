package handlers

import (
	"net/http"
	"strings"

	"alerts_review/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userId"
	ctxUsername = "username"
)

func (h *Handler) principalMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	if !h.authenticate(c, parts[1]) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}
	c.Next()
}

// authenticate parses token and stores the reviewer in the Gin context.
func (h *Handler) authenticate(c *gin.Context, token string) bool {
	p, err := h.services.Authorization.ParseToken(token)
	if err != nil {
		h.log.Debugw("auth_token_rejected", "err", err)
		return false
	}
	c.Set(ctxUserID, p.UserID)
	c.Set(ctxUsername, p.Username)
	return true
}

// currentAuthor is the note author for the signed-in reviewer.
func currentAuthor(c *gin.Context) string {
	if name := c.GetString(ctxUsername); name != "" {
		return name
	}
	return models.DefaultNoteAuthor
}
