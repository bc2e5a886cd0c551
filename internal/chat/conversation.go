// Package chat holds the conversation state and the typed results
// produced by the advisor's task executors.
package chat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Greeting seeds every new conversation as the first assistant turn.
const Greeting = "Hello! I'm Autovisory. Ask me to recommend, compare, or analyze a car."

// Turn is a single message in the conversation. Immutable once appended.
type Turn struct {
	Role    Role
	Content string
}

// Log is an append-only, ordered sequence of turns. A Log belongs to
// exactly one session; it is not safe for concurrent use and is never
// shared across sessions.
type Log struct {
	id    uuid.UUID
	turns []Turn
}

// NewLog creates a session log seeded with the greeting turn.
func NewLog() *Log {
	return &Log{
		id:    uuid.New(),
		turns: []Turn{{Role: RoleAssistant, Content: Greeting}},
	}
}

// SessionID returns the session identifier, used for log correlation.
func (l *Log) SessionID() uuid.UUID {
	return l.id
}

// Append adds a turn to the end of the log. Turns are never edited or
// removed afterwards.
func (l *Log) Append(t Turn) {
	l.turns = append(l.turns, t)
}

// Turns returns the turns in order. The returned slice is a copy.
func (l *Log) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of turns in the log.
func (l *Log) Len() int {
	return len(l.turns)
}

// Transcript serializes the full log in order as "role: content" lines.
// Both the classifier and the executors embed this in their prompts.
func (l *Log) Transcript() string {
	var b strings.Builder
	for i, t := range l.turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", t.Role, t.Content)
	}
	return b.String()
}
