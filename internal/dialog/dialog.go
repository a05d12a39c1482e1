// Package dialog implements a minimal stack-based conversation host and the
// location dialog that runs on top of it. Each conversation owns a stack of
// dialogs; the topmost dialog receives incoming messages until it finishes
// and hands its result to the dialog that called it.
package dialog

import (
	"context"
	"errors"

	"placebot/internal/models"
)

// Message is an incoming user turn, normalized away from any particular chat
// channel. A native location share arrives as Point with empty Text.
type Message struct {
	Text  string
	Point *models.GeoPoint
}

// Sender delivers outbound prompts to a conversation. Channel adapters (the
// Telegram bot, test fakes) implement it.
type Sender interface {
	SendText(ctx context.Context, conversationID int64, text string) error
	// RequestLocation prompts with the channel's native location-share
	// control where one exists; otherwise it degrades to plain text.
	RequestLocation(ctx context.Context, conversationID int64, text, buttonLabel string) error
	SendChoices(ctx context.Context, conversationID int64, text string, choices []string) error
}

// Dialog is a unit of conversational turn handling. Start runs when the
// dialog is placed on the stack; OnMessage runs for every user turn while it
// is topmost.
type Dialog interface {
	Start(ctx context.Context, dc *Context) error
	OnMessage(ctx context.Context, dc *Context, msg *Message) error
}

// ResumeFunc is invoked on the calling dialog when its child completes,
// carrying the child's result.
type ResumeFunc func(ctx context.Context, dc *Context, result any) error

// CompletionFunc receives the root dialog's result once the whole stack has
// unwound.
type CompletionFunc func(ctx context.Context, conversationID int64, result any) error

// ErrNoActiveDialog is returned when a message arrives for a conversation
// with an empty dialog stack.
var ErrNoActiveDialog = errors.New("dialog: no active dialog")
