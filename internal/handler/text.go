package handler

import (
	"errors"
	"strings"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

var errNotAsking = errors.New("no question is waiting for an answer")

// handleText treats a typed word as the answer to the current question
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	var reply string
	var markup *tele.ReplyMarkup
	err := h.store.Do(sessionKey(c), func(e *service.Entry) error {
		if e.Screen != domain.ScreenQuestion {
			return errNotAsking
		}
		if _, err := e.Answer(text); err != nil {
			return err
		}
		reply, markup = entryView(e)
		return nil
	})

	switch {
	case err == nil:
		return c.Send(reply, markup)
	case errors.Is(err, service.ErrSessionNotFound):
		return h.showGrades(c)
	case errors.Is(err, errNotAsking):
		return c.Send("ボタンで操作してください。/start で学年選択に戻ります。")
	default:
		h.logger.Error("Failed to check typed answer", zap.Error(err))
		return c.Send("エラーが発生しました。")
	}
}
