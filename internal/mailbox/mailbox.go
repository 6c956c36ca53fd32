package mailbox

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/uckkk/arthub/internal/data"
)

// Mailbox hält höchstens ein ausstehendes Workflow-Dokument. Eine neue
// Einreichung überschreibt ein noch nicht zugestelltes Dokument
// (last-write-wins, keine Queue).
type Mailbox struct {
	mu      sync.Mutex
	pending data.PendingWorkflow
	present bool
}

func New() *Mailbox {
	return &Mailbox{}
}

// Submit legt das Dokument ab und setzt den Zustellstatus zurück. Gibt die
// UID eines dabei überschriebenen, noch nicht zugestellten Dokuments zurück,
// sonst einen leeren String.
func (m *Mailbox) Submit(uid string, payload json.RawMessage) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var replaced string
	if m.present && !m.pending.Delivered {
		replaced = m.pending.UID
	}

	m.pending = data.PendingWorkflow{
		UID:         uid,
		Payload:     payload,
		SubmittedAt: time.Now(),
	}
	m.present = true

	return replaced
}

// Poll markiert ein ausstehendes Dokument als zugestellt und liefert es aus.
// Prüfen und Markieren geschieht unter dem Mutex als ein Schritt: bei
// parallelen Polls erhält genau einer das Dokument.
func (m *Mailbox) Poll() (data.PendingWorkflow, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present || m.pending.Delivered {
		return data.PendingWorkflow{}, false
	}

	m.pending.Delivered = true
	return m.pending, true
}
