package dialog

import (
	"context"
	"fmt"
)

type frame struct {
	dialog Dialog
	// resume belongs to the caller one frame down; it runs when this
	// frame's dialog completes.
	resume ResumeFunc
}

// Context is handed to dialogs on every turn. It exposes the call/done
// composition mechanics and outbound messaging for one conversation.
type Context struct {
	conversationID int64
	session        *session
	sender         Sender
	onDone         CompletionFunc
}

// ConversationID identifies the conversation this context belongs to.
func (dc *Context) ConversationID() int64 {
	return dc.conversationID
}

// SendText sends a plain text prompt to the user.
func (dc *Context) SendText(ctx context.Context, text string) error {
	return dc.sender.SendText(ctx, dc.conversationID, text)
}

// RequestLocation prompts with the channel's native location control.
func (dc *Context) RequestLocation(ctx context.Context, text, buttonLabel string) error {
	return dc.sender.RequestLocation(ctx, dc.conversationID, text, buttonLabel)
}

// SendChoices prompts with a fixed set of reply options.
func (dc *Context) SendChoices(ctx context.Context, text string, choices []string) error {
	return dc.sender.SendChoices(ctx, dc.conversationID, text, choices)
}

// Call pushes a child dialog onto the stack and starts it. When the child
// calls Done, resume runs with its result.
func (dc *Context) Call(ctx context.Context, child Dialog, resume ResumeFunc) error {
	dc.session.push(frame{dialog: child, resume: resume})
	return child.Start(ctx, dc)
}

// Done completes the topmost dialog. Its result is delivered to the caller's
// resume function, or to the conversation's completion callback when the
// root dialog finishes.
func (dc *Context) Done(ctx context.Context, result any) error {
	f, ok := dc.session.pop()
	if !ok {
		return fmt.Errorf("dialog: done called on empty stack")
	}
	if f.resume != nil {
		return f.resume(ctx, dc, result)
	}
	if dc.onDone != nil {
		return dc.onDone(ctx, dc.conversationID, result)
	}
	return nil
}
