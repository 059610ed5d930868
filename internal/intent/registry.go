package intent

import "fmt"

// CommandRegistry is an ordered, read-only mapping from command name to handler.
type CommandRegistry struct {
	order     []string
	handlers  map[string]Handler
	slashOnly map[string]bool
}

// NewCommandRegistry builds a registry, rejecting empty names, nil handlers and duplicates.
func NewCommandRegistry(entries ...Entry) (*CommandRegistry, error) {
	r := &CommandRegistry{
		order:     make([]string, 0, len(entries)),
		handlers:  make(map[string]Handler, len(entries)),
		slashOnly: make(map[string]bool),
	}
	for i, e := range entries {
		if e.Command == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyCommand)
		}
		if e.Handler == nil {
			return nil, fmt.Errorf("entry %q: %w", e.Command, ErrNilHandler)
		}
		if _, dup := r.handlers[e.Command]; dup {
			return nil, fmt.Errorf("entry %q: %w", e.Command, ErrDuplicateCommand)
		}
		r.order = append(r.order, e.Command)
		r.handlers[e.Command] = e.Handler
		if e.SlashOnly {
			r.slashOnly[e.Command] = true
		}
	}
	return r, nil
}

// Lookup returns the handler registered for command.
func (r *CommandRegistry) Lookup(command string) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.handlers[command]
	return h, ok
}

// LookupIntent is Lookup restricted to commands a classified intent may run.
func (r *CommandRegistry) LookupIntent(command string) (Handler, bool) {
	if r == nil || r.slashOnly[command] {
		return nil, false
	}
	return r.Lookup(command)
}

// Commands returns the registered names in registration order.
func (r *CommandRegistry) Commands() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered commands.
func (r *CommandRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
