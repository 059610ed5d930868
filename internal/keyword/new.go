package keyword

import (
	"fmt"
	"strings"

	"mindbet-bot/internal/model"
)

// Matcher resolves text against trigger phrases without any I/O.
type Matcher interface {
	Match(text string) model.IntentRecord
}

// PhraseMatcher is the substring-based Matcher over a Table.
type PhraseMatcher struct {
	table *Table
	reply string
}

var _ Matcher = (*PhraseMatcher)(nil)

// NewTable validates entries and builds an immutable table. Phrases are stored
// lowercased so matching only has to normalize the input.
func NewTable(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Command == "" {
			return nil, ErrEmptyCommand
		}
		if _, ok := seen[e.Command]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Command)
		}
		if len(e.Phrases) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoPhrases, e.Command)
		}
		phrases := make([]string, 0, len(e.Phrases))
		for _, p := range e.Phrases {
			if p == "" {
				return nil, fmt.Errorf("%w: %s", ErrEmptyPhrase, e.Command)
			}
			phrases = append(phrases, strings.ToLower(p))
		}
		seen[e.Command] = struct{}{}
		out = append(out, Entry{Command: e.Command, Phrases: phrases})
	}

	return &Table{entries: out}, nil
}

// DefaultTable returns the production trigger table.
func DefaultTable() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}

// New creates a PhraseMatcher. An empty reply uses HelpReply.
func New(table *Table, reply string) *PhraseMatcher {
	if reply == "" {
		reply = HelpReply
	}
	return &PhraseMatcher{
		table: table,
		reply: reply,
	}
}
