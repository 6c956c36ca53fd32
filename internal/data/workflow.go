package data

import (
	"encoding/json"
	"time"
)

// PendingWorkflow hält das zuletzt eingereichte Workflow-Dokument und
// dessen Zustellstatus. Das Dokument ist opak: die Bridge inspiziert
// oder transformiert es nie.
type PendingWorkflow struct {
	UID         string
	Payload     json.RawMessage
	SubmittedAt time.Time
	Delivered   bool
}
