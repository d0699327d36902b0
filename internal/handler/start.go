package handler

import (
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	if !h.authService.IsAuthorized(chatID) {
		// Request password
		h.ResetState(chatID)
		return c.Send(promptPassword)
	}

	// Show the first card
	h.ResetState(chatID)
	card := h.withCarousel(chatID, func(cr *service.Carousel) {
		cr.Index = 0
		cr.Revealed = false
	})
	return h.sendCard(c, card)
}
