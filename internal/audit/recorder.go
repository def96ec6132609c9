// Package audit turns to-do mutations into hashed journal entries.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/fentz26/deskkit/internal/journal"
	"github.com/fentz26/deskkit/internal/models"
)

// Recorder writes task events for audit trails.
type Recorder struct {
	journal *journal.Journal
}

// NewRecorder creates a recorder backed by j.
func NewRecorder(j *journal.Journal) *Recorder {
	return &Recorder{journal: j}
}

// RecordTask writes an event for a state-mutating to-do action. inputs is
// whatever the caller received (text, task id) and is stored as a hash.
func (r *Recorder) RecordTask(ctx context.Context, action models.TaskAction, taskID, text string, inputs interface{}) error {
	_, err := r.journal.RecordTaskEvent(ctx, action, taskID, text, HashInputs(inputs))
	return err
}

// HashInputs creates a SHA256 hash of the JSON-encoded inputs.
func HashInputs(inputs interface{}) string {
	data, err := json.Marshal(inputs)
	if err != nil {
		return "hash_error"
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
