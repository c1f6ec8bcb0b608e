package menu

import "time"

// OutcomeSuccess marks a journal entry for a successful generation.
const OutcomeSuccess = "success"

// JournalEntry records one generation attempt. The menu text is never kept.
type JournalEntry struct {
	ID        string
	Subject   string
	Outcome   string
	Detail    string
	Duration  time.Duration
	CreatedAt time.Time
}

// Failed reports whether the attempt ended in an error.
func (e JournalEntry) Failed() bool {
	return e.Outcome != OutcomeSuccess
}
