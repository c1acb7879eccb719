package handler

import (
	"errors"
	"strings"
	"unicode"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	userID := senderID(c)
	callbackID := ""
	if cb := c.Callback(); cb != nil {
		callbackID = cb.ID
	}

	// Same screen rendered twice, e.g. an option pressed again after answering
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", callbackID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", callbackID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// reply edits the message behind a callback, or sends a new one for commands
func (h *Handler) reply(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() != nil {
		if err := c.Edit(text, markup); err != nil {
			if handleErr := h.handleEditError(err, c); handleErr == nil {
				return nil
			}
			return c.Send(text, markup)
		}
		return c.Respond()
	}
	return c.Send(text, markup)
}

// alert answers a callback with a popup, or a message for commands
func (h *Handler) alert(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", senderID(c)),
	)

	// Handle specific button callbacks by Unique first
	switch callback.Unique {
	case btnNext.Unique:
		return h.handleNext(c)
	case btnRestart.Unique:
		return h.handleRestart(c)
	case btnBack.Unique, btnHome.Unique:
		return h.handleHome(c)
	}

	// If Unique is empty, try to handle by Data
	if callback.Unique == "" {
		switch data {
		case btnNext.Unique:
			return h.handleNext(c)
		case btnRestart.Unique:
			return h.handleRestart(c)
		case btnBack.Unique, btnHome.Unique:
			return h.handleHome(c)
		}
	}

	// Handle by Data prefix (dynamic buttons)
	switch {
	case strings.HasPrefix(data, prefixGrade):
		return h.handleGradeSelection(c, data)
	case strings.HasPrefix(data, prefixOption):
		return h.handleOption(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleGradeSelection starts a quiz for the chosen grade
func (h *Handler) handleGradeSelection(c tele.Context, data string) error {
	idx, err := parseIndex(data, prefixGrade)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "不正な選択です"})
	}

	grades, err := h.quiz.Grades()
	if err != nil {
		return h.alert(c, domain.MsgLoadFailed)
	}
	if idx >= len(grades) {
		return c.Respond(&tele.CallbackResponse{Text: "不正な選択です"})
	}
	grade := grades[idx]

	sess, err := h.quiz.Start(grade)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPool) {
			return h.alert(c, "この学年には単語がありません。")
		}
		h.logger.Error("Failed to start quiz", zap.Error(err), zap.String("grade", grade))
		return h.alert(c, "クイズを開始できませんでした。")
	}

	key := sessionKey(c)
	if err := h.store.Create(key, sess); err != nil {
		h.logger.Error("Failed to prepare quiz", zap.Error(err), zap.String("grade", grade))
		return h.alert(c, "クイズを開始できませんでした。")
	}

	h.logger.Info("Quiz started",
		zap.Int64("user_id", senderID(c)),
		zap.String("grade", grade),
	)

	return h.show(c, key, nil)
}

// handleOption checks the pressed answer button
func (h *Handler) handleOption(c tele.Context, data string) error {
	position, idx, err := parseOption(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "不正な選択です"})
	}

	return h.show(c, sessionKey(c), func(e *service.Entry) error {
		_, err := e.AnswerOption(position, idx)
		return err
	})
}

// handleNext moves to the next word after feedback
func (h *Handler) handleNext(c tele.Context) error {
	return h.show(c, sessionKey(c), (*service.Entry).Next)
}

// handleRestart reshuffles the finished grade
func (h *Handler) handleRestart(c tele.Context) error {
	return h.show(c, sessionKey(c), (*service.Entry).Restart)
}

// handleHome discards the session and shows grade selection
func (h *Handler) handleHome(c tele.Context) error {
	h.store.Delete(sessionKey(c))
	return h.showGrades(c)
}

// show applies action to the chat's session and renders the resulting screen
func (h *Handler) show(c tele.Context, key string, action func(*service.Entry) error) error {
	var text string
	var markup *tele.ReplyMarkup

	err := h.store.Do(key, func(e *service.Entry) error {
		if action != nil {
			if err := action(e); err != nil {
				return err
			}
		}
		text, markup = entryView(e)
		return nil
	})

	switch {
	case err == nil:
		return h.reply(c, text, markup)
	case errors.Is(err, service.ErrSessionNotFound):
		return h.showGradesNotice(c, "クイズが見つかりません。学年を選び直してください。")
	case errors.Is(err, service.ErrInvalidOption):
		return c.Respond(&tele.CallbackResponse{Text: "不正な選択です"})
	case errors.Is(err, service.ErrAnswerRequired):
		return c.Respond(&tele.CallbackResponse{Text: "先に答えを選んでください"})
	case errors.Is(err, domain.ErrSessionFinished):
		return c.Respond(&tele.CallbackResponse{Text: "このクイズは終了しています"})
	default:
		h.logger.Error("Failed to update quiz", zap.Error(err), zap.String("session", key))
		return h.alert(c, "エラーが発生しました。")
	}
}

// showGrades renders the grade selection screen
func (h *Handler) showGrades(c tele.Context) error {
	return h.showGradesNotice(c, "")
}

// showGradesNotice renders grade selection with notice above the prompt
func (h *Handler) showGradesNotice(c tele.Context, notice string) error {
	grades, err := h.quiz.Grades()
	if err != nil {
		h.logger.Error("Word data unavailable", zap.Error(err))
		return h.alert(c, domain.MsgLoadFailed)
	}

	text, markup := gradeSelectionView(grades)
	if notice != "" {
		text = notice + "\n\n" + text
	}
	return h.reply(c, text, markup)
}
