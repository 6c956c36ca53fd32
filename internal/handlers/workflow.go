package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/uckkk/arthub/internal/logger"
	"github.com/uckkk/arthub/internal/mailbox"
	"go.uber.org/zap"
)

const Version string = "1.0.0"

func NewSubmitHandler(mb *mailbox.Mailbox) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload json.RawMessage
		if err := c.ShouldBindJSON(&payload); err != nil {
			logger.Log.Warn("Fehler beim Parsen des Workflow-Dokuments:", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		uid := uuid.NewString()
		if replaced := mb.Submit(uid, payload); replaced != "" {
			logger.Log.Warn("Nicht zugestellter Workflow überschrieben:", zap.String("replaced_uid", replaced), zap.String("uid", uid))
		}

		logger.Log.Info("Neuer Workflow empfangen, warte auf Abruf durch das Frontend:", zap.String("uid", uid))
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Workflow queued for loading", "uid": uid})
	}
}

func NewPollHandler(mb *mailbox.Mailbox) gin.HandlerFunc {
	return func(c *gin.Context) {
		pending, ok := mb.Poll()
		if !ok {
			c.JSON(http.StatusOK, gin.H{"hasWorkflow": false})
			return
		}

		logger.Log.Info("Workflow an das Frontend zugestellt:", zap.String("uid", pending.UID), zap.Time("submitted_at", pending.SubmittedAt))
		c.JSON(http.StatusOK, gin.H{"hasWorkflow": true, "workflow": pending.Payload})
	}
}

// NewStatusHandler liefert eine statische Beschreibung der Bridge, damit
// das ArtHub-Frontend die Installation erkennen kann. Keine Seiteneffekte.
func NewStatusHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"installed": true,
			"version":   Version,
			"name":      name,
		})
	}
}
