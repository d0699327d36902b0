package handler

import (
	"sync"

	"flashcards/internal/domain"
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	store       *service.WordStore
	logger      *zap.Logger

	// Chat states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex

	// Chat carousel positions
	carousels   map[int64]*service.Carousel
	carouselMux sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	store *service.WordStore,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		store:       store,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
		carousels:   make(map[int64]*service.Carousel),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnPrev, h.handlePrev)
	h.bot.Handle(&btnNext, h.handleNext)
	h.bot.Handle(&btnReveal, h.handleReveal)
	h.bot.Handle(&btnAdd, h.handleAdd)
	h.bot.Handle(&btnDelete, h.handleDelete)
	h.bot.Handle(&btnCancel, h.handleCancel)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns chat's current state
func (h *Handler) GetState(chatID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[chatID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets chat's state
func (h *Handler) SetState(chatID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[chatID] = state
}

// ResetState resets chat to idle state
func (h *Handler) ResetState(chatID int64) {
	h.SetState(chatID, &domain.StateData{State: domain.StateIdle})
}

// withCarousel runs fn on the chat's carousel under lock and returns a copy of the result
func (h *Handler) withCarousel(chatID int64, fn func(c *service.Carousel)) service.Carousel {
	h.carouselMux.Lock()
	defer h.carouselMux.Unlock()

	c, exists := h.carousels[chatID]
	if !exists {
		c = &service.Carousel{}
		h.carousels[chatID] = c
	}
	fn(c)
	c.Clamp(h.store.Len())
	return *c
}

// Inline keyboard buttons
var (
	btnPrev = tele.Btn{
		Unique: "prev",
		Text:   "⬅️",
	}
	btnNext = tele.Btn{
		Unique: "next",
		Text:   "➡️",
	}
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   labelShow,
	}
	btnAdd = tele.Btn{
		Unique: "add",
		Text:   "Lisa sõna",
	}
	btnDelete = tele.Btn{
		Unique: "delete",
		Text:   "Kustuta sõna",
	}
	btnCancel = tele.Btn{
		Unique: "cancel",
		Text:   "❌ Tühista",
	}
)

const (
	labelShow = "Näita tõlget"
	labelHide = "Peida tõlge"

	promptSource      = "Lisa sõna\n\nSisestage vene sõna"
	promptTranslation = "Lisa sõna\n\nSisestage ingliskeelne tõlge"
	promptDelete      = "Kustuta sõna\n\nSisestage kustutatav venekeelne sõna"
	promptPassword    = "Tere! Sisestage parool:"

	msgEmpty       = "Sõnu pole. Vajutage \"Lisa sõna\"."
	msgNotFound    = "Sõna ei leitud"
	msgWrongPass   = "Vale parool"
	msgSaveFailed  = "⚠️ Muudatus on tehtud, kuid faili salvestamine ebaõnnestus."
	msgGenericFail = "Tekkis viga. Proovige hiljem uuesti."
)

// cardMarkup returns the carousel keyboard for a card
func cardMarkup(revealed bool) *tele.ReplyMarkup {
	reveal := btnReveal
	if revealed {
		reveal.Text = labelHide
	}

	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPrev, reveal, btnNext),
		menu.Row(btnAdd, btnDelete),
	)
	return menu
}

// emptyMarkup is shown when there are no cards to page through
func emptyMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnAdd))
	return menu
}

// cancelMarkup is attached to prompts
func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnCancel))
	return menu
}
