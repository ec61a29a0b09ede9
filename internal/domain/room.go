package domain

import "github.com/google/uuid"

type RoomID string

// Room is an ephemeral two-party messaging scope. Members are an unordered
// pair of identities; the room dies with the first leave or disconnect.
type Room struct {
	ID RoomID
	A  Identity
	B  Identity
}

// NewRoom assigns an opaque unguessable id.
func NewRoom(a, b Identity) *Room {
	return &Room{ID: RoomID(uuid.NewString()), A: a, B: b}
}

func (r *Room) Has(id Identity) bool {
	return id == r.A || id == r.B
}

// Other returns the peer of id, or "" when id is not a member.
func (r *Room) Other(id Identity) Identity {
	switch id {
	case r.A:
		return r.B
	case r.B:
		return r.A
	}
	return ""
}

func (r *Room) Members() [2]Identity {
	return [2]Identity{r.A, r.B}
}
