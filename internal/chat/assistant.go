// Package chat implements the placeholder trip assistant: an append-only
// message log that answers every user message with the same canned reply
// after a fixed delay.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/tripmate/internal/domain"
)

const (
	// Greeting seeds every new conversation.
	Greeting = "Hi! I'm your TripMate Assistant. How can I help you plan your trip today?"

	// Reply is sent for every user message, whatever it says.
	Reply = "I'll help you plan that! What specific details would you like to know?"

	// DefaultReplyDelay is how long the assistant "thinks" before replying.
	DefaultReplyDelay = time.Second
)

// Clock abstracts time retrieval so message timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Assistant holds one conversation. It is safe for concurrent use; replies
// are appended from timer goroutines.
type Assistant struct {
	mu       sync.Mutex
	messages []domain.Message

	delay   time.Duration
	clock   Clock
	log     *slog.Logger
	pending sync.WaitGroup
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithReplyDelay overrides DefaultReplyDelay.
func WithReplyDelay(d time.Duration) Option {
	return func(a *Assistant) { a.delay = d }
}

// WithClock sets the clock used for message timestamps.
func WithClock(c Clock) Option {
	return func(a *Assistant) { a.clock = c }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Assistant) { a.log = l }
}

// New starts a conversation containing only the greeting.
func New(opts ...Option) *Assistant {
	a := &Assistant{
		delay: DefaultReplyDelay,
		clock: realClock{},
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.messages = []domain.Message{a.message(domain.SenderBot, Greeting)}
	return a
}

// Messages returns a snapshot of the conversation in append order.
func (a *Assistant) Messages(_ context.Context) []domain.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.Message(nil), a.messages...)
}

// Send appends text as a user message and schedules the canned reply.
// Blank input is ignored and reported with ok == false.
// The reply cannot be cancelled once scheduled, so it outlives ctx.
func (a *Assistant) Send(ctx context.Context, text string) (msg domain.Message, ok bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, false
	}

	msg = a.message(domain.SenderUser, text)
	a.append(msg)

	ctx = context.WithoutCancel(ctx)
	a.pending.Add(1)
	time.AfterFunc(a.delay, func() {
		defer a.pending.Done()
		a.append(a.message(domain.SenderBot, Reply))
		a.log.DebugContext(ctx, "assistant replied", "in_reply_to", msg.ID)
	})
	return msg, true
}

// Wait blocks until every scheduled reply has been appended.
func (a *Assistant) Wait() {
	a.pending.Wait()
}

func (a *Assistant) append(m domain.Message) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, m)
}

func (a *Assistant) message(sender domain.Sender, text string) domain.Message {
	return domain.Message{
		ID:        uuid.New(),
		Sender:    sender,
		Text:      text,
		Timestamp: a.clock.Now(),
	}
}
