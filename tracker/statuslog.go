package tracker

import "sync"

// StatusLog is the single most recent announcement, owned by the timer that
// produced it. Only the owner may clear it.
type StatusLog struct {
	mu    sync.RWMutex
	text  string
	owner Token
}

// NewStatusLog creates an empty log.
func NewStatusLog() *StatusLog {
	return &StatusLog{}
}

// Set overwrites the announcement and hands ownership to the token.
func (l *StatusLog) Set(text string, owner Token) {
	l.mu.Lock()
	l.text = text
	l.owner = owner
	l.mu.Unlock()
}

// ClearIfOwned empties the log if the token still owns it and reports
// whether it did.
func (l *StatusLog) ClearIfOwned(token Token) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if token == "" || l.owner != token {
		return false
	}

	l.text = ""
	l.owner = ""

	return true
}

// Text returns the current announcement, empty if none.
func (l *StatusLog) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// Owner returns the token owning the log, if any.
func (l *StatusLog) Owner() (Token, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.owner, l.owner != ""
}

// Reset empties the log and drops its owner.
func (l *StatusLog) Reset() {
	l.mu.Lock()
	l.text = ""
	l.owner = ""
	l.mu.Unlock()
}
