package handler

import (
	"fmt"
	"strconv"
	"strings"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/service"

	tele "gopkg.in/telebot.v3"
)

const (
	prefixGrade  = "grade_"
	prefixOption = "opt_"
)

// gradeSelectionView shows one button per grade
func gradeSelectionView(grades []string) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(grades))
	for i, grade := range grades {
		rows = append(rows, markup.Row(markup.Data(grade, prefixGrade+strconv.Itoa(i))))
	}
	markup.Inline(rows...)

	if len(grades) == 0 {
		return "📚 学年がまだ登録されていません。", markup
	}
	return "📚 学年を選んでください:", markup
}

// entryView renders whatever screen the session entry is on
func entryView(e *service.Entry) (string, *tele.ReplyMarkup) {
	switch e.Screen {
	case domain.ScreenResult:
		return resultView(e)
	case domain.ScreenFeedback:
		return feedbackView(e)
	default:
		return questionView(e)
	}
}

func questionView(e *service.Entry) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(e.Options)+1)
	for i, option := range e.Options {
		rows = append(rows, markup.Row(markup.Data(option, optionData(e, i))))
	}
	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return questionText(e), markup
}

func feedbackView(e *service.Entry) (string, *tele.ReplyMarkup) {
	result := e.Feedback
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(e.Options)+2)
	for i, option := range e.Options {
		label := option
		switch {
		case result != nil && option == result.CorrectWord:
			label = "✅ " + option
		case option == e.Chosen:
			label = "❌ " + option
		}
		rows = append(rows, markup.Row(markup.Data(label, optionData(e, i))))
	}
	rows = append(rows, markup.Row(btnNext), markup.Row(btnBack))
	markup.Inline(rows...)

	text := questionText(e)
	if result != nil {
		text += "\n\n" + feedbackText(*result)
	}
	return text, markup
}

func resultView(e *service.Entry) (string, *tele.ReplyMarkup) {
	_, total := e.Session.Progress()

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnRestart),
		markup.Row(btnHome),
	)

	text := fmt.Sprintf("🎉 お疲れさまでした！\n\n%s: 全%d問おわりました。", e.Session.Grade(), total)
	return text, markup
}

func questionText(e *service.Entry) string {
	current, total := e.Session.Progress()
	meaning := ""
	if q, err := e.Session.CurrentQuestion(); err == nil {
		meaning = q.Meaning
	}
	return fmt.Sprintf("📝 %s\n\n(%d / %d)", meaning, current, total)
}

// feedbackText formats the verdict for an answer
func feedbackText(result domain.AnswerResult) string {
	if result.Correct {
		return domain.MsgCorrect
	}
	return domain.MsgIncorrect + "\n" + domain.MsgCorrectAnswerIs + result.CorrectWord
}

// optionData identifies option i of the question the entry is on,
// as opt_<position>_<i>
func optionData(e *service.Entry, i int) string {
	return prefixOption + strconv.Itoa(e.Session.Position()) + "_" + strconv.Itoa(i)
}

// parseOption splits opt_<position>_<i> callback data
func parseOption(data string) (position, i int, err error) {
	rest := strings.TrimPrefix(strings.TrimSpace(data), prefixOption)
	pos, idx, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, 0, fmt.Errorf("invalid callback data %q", data)
	}
	if position, err = parseIndex(pos, ""); err != nil {
		return 0, 0, err
	}
	if i, err = parseIndex(idx, ""); err != nil {
		return 0, 0, err
	}
	return position, i, nil
}

// parseIndex extracts the number after prefix in callback data
func parseIndex(data, prefix string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(data), prefix))
	if err != nil {
		return 0, fmt.Errorf("invalid callback data %q: %w", data, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid callback data %q", data)
	}
	return n, nil
}
