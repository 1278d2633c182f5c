package domain

// Command is one validated request. It lives for a single request/response
// exchange.
type Command struct {
	// Name is the canonical (table) name of the command.
	Name string
	// Key is the second request element, present when arity > 1.
	Key string
	// Args holds the elements after the key as opaque bytes.
	Args [][]byte
}

// Arg returns the i-th positional argument, or nil if absent.
func (c *Command) Arg(i int) []byte {
	if i < 0 || i >= len(c.Args) {
		return nil
	}
	return c.Args[i]
}
