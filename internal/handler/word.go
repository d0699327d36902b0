package handler

import (
	"errors"
	"strings"

	"flashcards/internal/domain"
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// If not authorized, the text is a password attempt
	if !h.authService.IsAuthorized(chatID) {
		if !h.authService.CheckPassword(text) {
			return c.Send(msgWrongPass)
		}

		h.authService.AuthorizeUser(chatID)
		h.logger.Info("Chat authorized", zap.Int64("chat_id", chatID))
		h.ResetState(chatID)
		return h.sendCard(c, h.withCarousel(chatID, func(*service.Carousel) {}))
	}

	state := h.GetState(chatID)

	switch state.State {
	case domain.StateWaitingSource:
		// Got the source word, now wait for the translation
		h.SetState(chatID, &domain.StateData{
			State:         domain.StateWaitingTranslation,
			PendingSource: text,
		})
		return c.Send(promptTranslation, cancelMarkup())

	case domain.StateWaitingTranslation:
		source := state.PendingSource
		h.ResetState(chatID)

		words, err := h.store.AddWord(source, text)
		if errors.Is(err, service.ErrNotLoaded) {
			h.logger.Error("Store not loaded", zap.Error(err))
			return c.Send(msgGenericFail)
		}

		card := h.withCarousel(chatID, func(cr *service.Carousel) {
			cr.Last(len(words))
		})
		if err != nil {
			if sendErr := c.Send(msgSaveFailed); sendErr != nil {
				h.logger.Warn("Failed to send save warning", zap.Error(sendErr))
			}
		} else {
			h.logger.Info("Word pair added",
				zap.Int64("chat_id", chatID),
				zap.String("source", source),
				zap.String("translation", text),
			)
		}
		return h.sendCard(c, card)

	case domain.StateWaitingDelete:
		h.ResetState(chatID)

		_, found, err := h.store.DeleteWord(text)
		if errors.Is(err, service.ErrNotLoaded) {
			h.logger.Error("Store not loaded", zap.Error(err))
			return c.Send(msgGenericFail)
		}

		var note string
		switch {
		case !found:
			note = msgNotFound
		case err != nil:
			note = msgSaveFailed
		default:
			h.logger.Info("Word pair deleted",
				zap.Int64("chat_id", chatID),
				zap.String("source", text),
			)
		}

		card := h.withCarousel(chatID, func(*service.Carousel) {})
		if note != "" {
			if sendErr := c.Send(note); sendErr != nil {
				h.logger.Warn("Failed to send note", zap.Error(sendErr))
			}
		}
		return h.sendCard(c, card)

	default:
		// Idle state - show where the carousel is
		return h.sendCard(c, h.withCarousel(chatID, func(*service.Carousel) {}))
	}
}
