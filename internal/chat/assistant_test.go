package chat_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/tripmate/internal/chat"
	"github.com/pkordes/tripmate/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var (
	ctx  = context.Background()
	noon = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
)

func newAssistant(delay time.Duration) *chat.Assistant {
	return chat.New(chat.WithReplyDelay(delay), chat.WithClock(fixedClock{noon}))
}

func TestNew_SeedsGreeting(t *testing.T) {
	a := newAssistant(time.Millisecond)

	msgs := a.Messages(ctx)

	require.Len(t, msgs, 1)
	assert.Equal(t, domain.SenderBot, msgs[0].Sender)
	assert.Equal(t, chat.Greeting, msgs[0].Text)
	assert.Equal(t, noon, msgs[0].Timestamp)
}

// TestSend_Hello verifies the user message is appended immediately and
// exactly one canned reply follows after the delay.
func TestSend_Hello(t *testing.T) {
	a := newAssistant(20 * time.Millisecond)

	sent, ok := a.Send(ctx, "Hello")

	require.True(t, ok)
	assert.Equal(t, "Hello", sent.Text)
	assert.Equal(t, domain.SenderUser, sent.Sender)

	msgs := a.Messages(ctx)
	require.Len(t, msgs, 2)
	assert.Equal(t, sent, msgs[1])

	a.Wait()

	msgs = a.Messages(ctx)
	require.Len(t, msgs, 3)
	assert.Equal(t, domain.SenderBot, msgs[2].Sender)
	assert.Equal(t, chat.Reply, msgs[2].Text)
}

// TestSend_ReplyWaitsForDelay verifies the reply is not appended before the
// delay has elapsed.
func TestSend_ReplyWaitsForDelay(t *testing.T) {
	a := newAssistant(time.Hour)

	_, ok := a.Send(ctx, "Where should we eat?")

	require.True(t, ok)
	assert.Len(t, a.Messages(ctx), 2)
}

func TestSend_ReplyIgnoresContent(t *testing.T) {
	a := newAssistant(time.Millisecond)

	a.Send(ctx, "Book me a flight to Lisbon")
	a.Wait()
	a.Send(ctx, "?")
	a.Wait()

	msgs := a.Messages(ctx)
	require.Len(t, msgs, 5)
	assert.Equal(t, chat.Reply, msgs[2].Text)
	assert.Equal(t, chat.Reply, msgs[4].Text)
}

func TestSend_BlankInputIgnored(t *testing.T) {
	a := newAssistant(time.Millisecond)

	for _, in := range []string{"", "   ", "\n\t"} {
		_, ok := a.Send(ctx, in)
		assert.False(t, ok, "%q", in)
	}
	a.Wait()

	assert.Len(t, a.Messages(ctx), 1)
}

// TestSend_KeepsTextAsTyped verifies surrounding whitespace is only used to
// detect blank input, not stripped from the message.
func TestSend_KeepsTextAsTyped(t *testing.T) {
	a := newAssistant(time.Millisecond)

	sent, ok := a.Send(ctx, "  hi there \n")
	a.Wait()

	require.True(t, ok)
	assert.Equal(t, "  hi there \n", sent.Text)
}

func TestSend_Concurrent(t *testing.T) {
	a := newAssistant(time.Millisecond)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Send(ctx, "ping")
		}()
	}
	wg.Wait()
	a.Wait()

	msgs := a.Messages(ctx)
	assert.Len(t, msgs, 1+20*2)
}

func TestMessages_ReturnsSnapshot(t *testing.T) {
	a := newAssistant(time.Millisecond)

	snap := a.Messages(ctx)
	snap[0].Text = "tampered"

	assert.Equal(t, chat.Greeting, a.Messages(ctx)[0].Text)
}
