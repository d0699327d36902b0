package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context for handler tests. Only the methods the
// handlers use are implemented; anything else panics on the nil embed.
type FakeContext struct {
	tele.Context

	ChatID        int64
	MessageText   string
	CallbackQuery *tele.Callback
	SendErr       error
	EditErr       error

	Sent      []string
	Markups   []*tele.ReplyMarkup
	Responses []*tele.CallbackResponse
	Edited    []string
}

// NewFakeContext creates a context for a text update in chatID
func NewFakeContext(chatID int64, text string) *FakeContext {
	return &FakeContext{ChatID: chatID, MessageText: text}
}

// NewFakeCallback creates a context for a button press in chatID
func NewFakeCallback(chatID int64, data string) *FakeContext {
	return &FakeContext{ChatID: chatID, CallbackQuery: &tele.Callback{Data: data}}
}

func (c *FakeContext) Chat() *tele.Chat {
	return &tele.Chat{ID: c.ChatID}
}

func (c *FakeContext) Sender() *tele.User {
	return &tele.User{ID: c.ChatID}
}

func (c *FakeContext) Text() string {
	return c.MessageText
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.CallbackQuery
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, fmt.Sprint(what))
	c.Markups = append(c.Markups, markupOf(opts))
	return c.SendErr
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, fmt.Sprint(what))
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	if len(resp) == 0 {
		c.Responses = append(c.Responses, &tele.CallbackResponse{})
		return nil
	}
	c.Responses = append(c.Responses, resp...)
	return nil
}

// LastSent returns the most recent message text, or "" if nothing was sent
func (c *FakeContext) LastSent() string {
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}

func markupOf(opts []interface{}) *tele.ReplyMarkup {
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			return m
		}
	}
	return nil
}
