package handler

import (
	"fmt"
	"strings"
	"unicode"

	"flashcards/internal/domain"
	"flashcards/internal/service"

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

// cardText renders a card; the translation is masked until revealed
func cardText(pair domain.WordPair, index, total int, revealed bool) string {
	translation := "• • •"
	if revealed {
		translation = pair.Translation
	}
	return fmt.Sprintf("📝 %s\n🔄 %s\n\n%d/%d", pair.Source, translation, index+1, total)
}

// renderCard returns the text and keyboard for the carousel position
func (h *Handler) renderCard(card service.Carousel) (string, *tele.ReplyMarkup) {
	pair, ok := h.store.At(card.Index)
	if !ok {
		return msgEmpty, emptyMarkup()
	}
	return cardText(pair, card.Index, h.store.Len(), card.Revealed), cardMarkup(card.Revealed)
}

// sendCard sends the card as a new message
func (h *Handler) sendCard(c tele.Context, card service.Carousel) error {
	text, markup := h.renderCard(card)
	return c.Send(text, markup)
}

// editCard replaces the callback's message with the card, falling back to a new message
func (h *Handler) editCard(c tele.Context, card service.Carousel) error {
	text, markup := h.renderCard(card)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Chat().ID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, chatID int64) error {
	if err == nil {
		return nil
	}

	// Double taps on the same button produce identical content
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("chat_id", chatID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", chatID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles callbacks that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	key := callback.Unique
	if key == "" {
		key = data
	}

	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Chat().ID),
	)

	switch key {
	case btnPrev.Unique:
		return h.handlePrev(c)
	case btnNext.Unique:
		return h.handleNext(c)
	case btnReveal.Unique:
		return h.handleReveal(c)
	case btnAdd.Unique:
		return h.handleAdd(c)
	case btnDelete.Unique:
		return h.handleDelete(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handlePrev shows the previous card
func (h *Handler) handlePrev(c tele.Context) error {
	card := h.withCarousel(c.Chat().ID, func(cr *service.Carousel) {
		cr.Prev(h.store.Len())
	})
	return h.editCard(c, card)
}

// handleNext shows the next card
func (h *Handler) handleNext(c tele.Context) error {
	card := h.withCarousel(c.Chat().ID, func(cr *service.Carousel) {
		cr.Next(h.store.Len())
	})
	return h.editCard(c, card)
}

// handleReveal toggles the translation of the current card
func (h *Handler) handleReveal(c tele.Context) error {
	card := h.withCarousel(c.Chat().ID, func(cr *service.Carousel) {
		cr.Toggle()
	})
	return h.editCard(c, card)
}

// handleAdd starts the add-word dialog
func (h *Handler) handleAdd(c tele.Context) error {
	chatID := c.Chat().ID
	h.SetState(chatID, &domain.StateData{State: domain.StateWaitingSource})

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(promptSource, cancelMarkup())
}

// handleDelete starts the delete-word dialog
func (h *Handler) handleDelete(c tele.Context) error {
	chatID := c.Chat().ID
	h.SetState(chatID, &domain.StateData{State: domain.StateWaitingDelete})

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(promptDelete, cancelMarkup())
}

// handleCancel cancels the current dialog and shows the card again
func (h *Handler) handleCancel(c tele.Context) error {
	chatID := c.Chat().ID
	h.ResetState(chatID)
	return h.editCard(c, h.withCarousel(chatID, func(*service.Carousel) {}))
}
