package dialog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

type session struct {
	mu    sync.Mutex
	stack []frame
}

func (s *session) push(f frame) {
	s.stack = append(s.stack, f)
}

func (s *session) pop() (frame, bool) {
	if len(s.stack) == 0 {
		return frame{}, false
	}
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return f, true
}

func (s *session) top() (frame, bool) {
	if len(s.stack) == 0 {
		return frame{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Engine routes conversation turns to per-conversation dialog stacks. Turns
// within one conversation are serialized; separate conversations run
// independently.
type Engine struct {
	mu       sync.Mutex
	sessions map[int64]*session

	sender Sender
	onDone CompletionFunc
	log    zerolog.Logger
}

// NewEngine creates an engine that prompts through sender and reports root
// dialog results to onDone.
func NewEngine(sender Sender, onDone CompletionFunc, log zerolog.Logger) *Engine {
	return &Engine{
		sessions: map[int64]*session{},
		sender:   sender,
		onDone:   onDone,
		log:      log,
	}
}

func (e *Engine) sessionFor(conversationID int64) *session {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[conversationID]
	if !ok {
		s = &session{}
		e.sessions[conversationID] = s
	}
	return s
}

func (e *Engine) contextFor(conversationID int64, s *session) *Context {
	return &Context{
		conversationID: conversationID,
		session:        s,
		sender:         e.sender,
		onDone:         e.onDone,
	}
}

// Begin discards any dialog the conversation may still be running and starts
// root as its new stack bottom.
func (e *Engine) Begin(ctx context.Context, conversationID int64, root Dialog) error {
	s := e.sessionFor(conversationID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) > 0 {
		e.log.Debug().
			Int64("conversation_id", conversationID).
			Int("abandoned_frames", len(s.stack)).
			Msg("restarting conversation")
		s.stack = nil
	}

	dc := e.contextFor(conversationID, s)
	s.push(frame{dialog: root})
	return root.Start(ctx, dc)
}

// HandleMessage delivers a user turn to the conversation's topmost dialog.
func (e *Engine) HandleMessage(ctx context.Context, conversationID int64, msg *Message) error {
	s := e.sessionFor(conversationID)
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.top()
	if !ok {
		return ErrNoActiveDialog
	}

	dc := e.contextFor(conversationID, s)
	return f.dialog.OnMessage(ctx, dc, msg)
}

// Active reports whether the conversation has a dialog in progress.
func (e *Engine) Active(conversationID int64) bool {
	s := e.sessionFor(conversationID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stack) > 0
}
