package middleware

import (
	"strings"

	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const passwordPrompt = "Tere! Sisestage parool:"

// AuthMiddleware creates authentication middleware. Unauthorized chats may only
// send /start and text (the password); everything else gets the password prompt.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Chat() == nil {
				return nil
			}
			chatID := c.Chat().ID

			if authService.IsAuthorized(chatID) {
				return next(c)
			}

			// /start and plain text carry the login flow
			if c.Callback() == nil && (c.Text() == "/start" || !strings.HasPrefix(c.Text(), "/")) {
				return next(c)
			}

			logger.Debug("Rejected unauthorized update", zap.Int64("chat_id", chatID))
			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: passwordPrompt, ShowAlert: true})
			}
			return c.Send(passwordPrompt)
		}
	}
}
