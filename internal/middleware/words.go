package middleware

import (
	"vocabquiz/internal/domain"
	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// RequireWords answers every update with the load failure message
// when the word data could not be loaded at startup
func RequireWords(quiz *service.QuizService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if quiz.Available() {
				return next(c)
			}

			var userID int64
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
			}
			logger.Debug("Rejecting update, word data unavailable", zap.Int64("user_id", userID))

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: domain.MsgLoadFailed, ShowAlert: true})
			}
			return c.Send(domain.MsgLoadFailed)
		}
	}
}
