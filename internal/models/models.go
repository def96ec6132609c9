// Package models defines the history records shared by the journal and
// the rps and todo packages.
package models

import "time"

// TaskAction names a mutating to-do operation.
type TaskAction string

const (
	TaskActionAdd      TaskAction = "add"
	TaskActionEdit     TaskAction = "edit"
	TaskActionComplete TaskAction = "complete"
	TaskActionReopen   TaskAction = "reopen"
	TaskActionDelete   TaskAction = "delete"
)

// RoundRecord is one journaled rock-paper-scissors round.
type RoundRecord struct {
	ID            string    `json:"id"`
	UserMove      string    `json:"user_move"`
	ComputerMove  string    `json:"computer_move"`
	Outcome       string    `json:"outcome"`
	UserScore     int       `json:"user_score"`     // tally after the round
	ComputerScore int       `json:"computer_score"` // tally after the round
	PlayedAt      time.Time `json:"played_at"`
}

// TaskEvent is one journaled to-do mutation.
type TaskEvent struct {
	ID         string     `json:"id"`
	Action     TaskAction `json:"action"`
	TaskID     string     `json:"task_id"`
	Text       string     `json:"text"`
	InputsHash string     `json:"inputs_hash"`
	CreatedAt  time.Time  `json:"created_at"`
}
