package handler

import (
	"strconv"

	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	quiz   *service.QuizService
	store  *service.SessionStore
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	quiz *service.QuizService,
	store *service.SessionStore,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:    bot,
		quiz:   quiz,
		store:  store,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages (typed answers)
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnRestart, h.handleRestart)
	h.bot.Handle(&btnBack, h.handleHome)
	h.bot.Handle(&btnHome, h.handleHome)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// sessionKey returns the store key of the chat's quiz session
func sessionKey(c tele.Context) string {
	var id int64
	if chat := c.Chat(); chat != nil {
		id = chat.ID
	} else if sender := c.Sender(); sender != nil {
		id = sender.ID
	}
	return "tg:" + strconv.FormatInt(id, 10)
}

func senderID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}

// Inline keyboard buttons
var (
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "次の単語へ ➡️",
	}
	btnRestart = tele.Btn{
		Unique: "restart",
		Text:   "🔄 もう一度",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "◀️ 学年選択に戻る",
	}
	btnHome = tele.Btn{
		Unique: "home",
		Text:   "🏠 ホームへ",
	}
)
