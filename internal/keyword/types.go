package keyword

// Entry binds a command to its trigger phrases.
type Entry struct {
	Command string
	Phrases []string
}

// Table is an immutable, ordered keyword table.
type Table struct {
	entries []Entry
}

// Entries returns a copy of the table in definition order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Command: e.Command, Phrases: append([]string(nil), e.Phrases...)}
	}
	return out
}

// Len returns the number of commands in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
