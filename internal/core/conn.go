package core

// Frame is a single encoded wire payload.
type Frame []byte

// ConnID identifies one live transport session.
type ConnID string

// SignalConnection abstracts a system messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
