package formbridge

import "github.com/google/uuid"

// MessageStore is one contributor's partition of an editing context's
// shared message collection. Each validator attached to a context
// writes through its own store, so clearing a store never disturbs
// messages contributed by anyone else.
//
// Stores are created through EditingContext.NewMessageStore and are not
// safe for concurrent use; the context's single-owner dispatch model
// applies.
type MessageStore struct {
	id      string
	entries map[string][]string
}

func newMessageStore() *MessageStore {
	return &MessageStore{
		id:      uuid.NewString(),
		entries: make(map[string][]string),
	}
}

// ID returns the store's contributor identifier, useful for attributing
// messages in logs.
func (s *MessageStore) ID() string { return s.id }

// Add records a message against a field path. Multiple messages per
// path accumulate in insertion order.
func (s *MessageStore) Add(path, message string) {
	s.entries[path] = append(s.entries[path], message)
}

// Clear removes every entry from this partition only.
func (s *MessageStore) Clear() {
	clear(s.entries)
}

// Messages returns the messages recorded against a path in this
// partition, in insertion order.
func (s *MessageStore) Messages(path string) []string {
	return s.entries[path]
}

// Len reports the total number of messages in this partition.
func (s *MessageStore) Len() int {
	n := 0
	for _, msgs := range s.entries {
		n += len(msgs)
	}
	return n
}
