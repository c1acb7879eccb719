package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", senderID(c)),
		zap.String("username", username(c)),
	)

	// A new /start always goes back to grade selection
	h.store.Delete(sessionKey(c))
	return h.showGrades(c)
}

func username(c tele.Context) string {
	if sender := c.Sender(); sender != nil {
		return sender.Username
	}
	return ""
}
