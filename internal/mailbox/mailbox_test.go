package mailbox

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitThenPoll(t *testing.T) {
	mb := New()

	payload := json.RawMessage(`{"nodes":[{"id":1}]}`)
	replaced := mb.Submit("uid-1", payload)
	assert.Empty(t, replaced)

	pending, ok := mb.Poll()
	assert.True(t, ok)
	assert.Equal(t, "uid-1", pending.UID)
	assert.JSONEq(t, string(payload), string(pending.Payload))
	assert.False(t, pending.SubmittedAt.IsZero())

	// Zweiter Poll ohne neue Einreichung liefert nichts
	_, ok = mb.Poll()
	assert.False(t, ok)
}

func TestPollEmptyMailbox(t *testing.T) {
	mb := New()

	_, ok := mb.Poll()
	assert.False(t, ok)
}

func TestSubmitOverwritesUndelivered(t *testing.T) {
	mb := New()

	mb.Submit("uid-a", json.RawMessage(`{"doc":"A"}`))
	replaced := mb.Submit("uid-b", json.RawMessage(`{"doc":"B"}`))
	assert.Equal(t, "uid-a", replaced)

	// Nur B ist abrufbar, A ist verworfen
	pending, ok := mb.Poll()
	assert.True(t, ok)
	assert.Equal(t, "uid-b", pending.UID)
	assert.JSONEq(t, `{"doc":"B"}`, string(pending.Payload))

	_, ok = mb.Poll()
	assert.False(t, ok)
}

func TestSubmitAfterDeliveryDoesNotReportOverwrite(t *testing.T) {
	mb := New()

	mb.Submit("uid-a", json.RawMessage(`{"doc":"A"}`))
	_, ok := mb.Poll()
	assert.True(t, ok)

	// Das zugestellte Dokument zählt nicht als Überschreibung
	replaced := mb.Submit("uid-b", json.RawMessage(`{"doc":"B"}`))
	assert.Empty(t, replaced)
}

func TestConcurrentPollsDeliverExactlyOnce(t *testing.T) {
	mb := New()
	mb.Submit("uid-1", json.RawMessage(`{"doc":"race"}`))

	const pollers = 50

	var wg sync.WaitGroup
	var delivered atomic.Int32
	start := make(chan struct{})

	for i := 0; i < pollers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := mb.Poll(); ok {
				delivered.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	// Genau ein Poller erhält das Dokument
	assert.Equal(t, int32(1), delivered.Load())
}
