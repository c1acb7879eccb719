package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// Sent is a message sent or edited through FakeContext
type Sent struct {
	What interface{}
	Opts []interface{}
}

// Markup returns the reply markup passed with the message, if any
func (s Sent) Markup() *tele.ReplyMarkup {
	for _, opt := range s.Opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			return m
		}
	}
	return nil
}

// Text returns the message text
func (s Sent) Text() string {
	text, _ := s.What.(string)
	return text
}

// FakeContext is a telebot context that records replies.
// Methods it does not override panic when called.
type FakeContext struct {
	tele.Context

	User     *tele.User
	ChatInfo *tele.Chat
	Cb       *tele.Callback
	MsgText  string
	EditErr  error

	Sent      []Sent
	Edited    []Sent
	Responses []*tele.CallbackResponse
}

// NewFakeContext creates a context for a private chat with userID
func NewFakeContext(userID int64) *FakeContext {
	return &FakeContext{
		User:     &tele.User{ID: userID, Username: "tester"},
		ChatInfo: &tele.Chat{ID: userID},
	}
}

// WithCallback sets callback data and clears previous replies
func (c *FakeContext) WithCallback(unique, data string) *FakeContext {
	c.Cb = &tele.Callback{ID: "cb", Unique: unique, Data: data}
	c.reset()
	return c
}

// WithText sets a text message and clears previous replies
func (c *FakeContext) WithText(text string) *FakeContext {
	c.Cb = nil
	c.MsgText = text
	c.reset()
	return c
}

func (c *FakeContext) reset() {
	c.Sent = nil
	c.Edited = nil
	c.Responses = nil
}

// Last returns the latest sent or edited message
func (c *FakeContext) Last() Sent {
	if len(c.Edited) > 0 {
		return c.Edited[len(c.Edited)-1]
	}
	if len(c.Sent) > 0 {
		return c.Sent[len(c.Sent)-1]
	}
	return Sent{}
}

func (c *FakeContext) Sender() *tele.User { return c.User }
func (c *FakeContext) Chat() *tele.Chat { return c.ChatInfo }
func (c *FakeContext) Callback() *tele.Callback { return c.Cb }
func (c *FakeContext) Text() string { return c.MsgText }

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, Sent{What: what, Opts: opts})
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, Sent{What: what, Opts: opts})
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	var r *tele.CallbackResponse
	if len(resp) > 0 {
		r = resp[0]
	}
	c.Responses = append(c.Responses, r)
	return nil
}
