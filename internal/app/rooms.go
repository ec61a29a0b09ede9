package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
	"github.com/dvelts/pairchat/internal/domain"
)

// createRoomLocked stores the room, seats both identities in the busy index
// and announces the pairing to both members. Called only from a successful
// accept; callers hold s.mu.
func (s *Service) createRoomLocked(a, b domain.Identity) *domain.Room {
	room := domain.NewRoom(a, b)
	s.rooms[room.ID] = room
	s.busy[a] = room.ID
	s.busy[b] = room.ID
	log.Info().Str("module", "app.rooms").
		Str("room", string(room.ID)).Str("a", string(a)).Str("b", string(b)).Msg("room created")

	s.broadcastRoomLocked(room, core.Connected{
		Type:   core.EvConnected,
		RoomID: room.ID,
		A:      string(a),
		B:      string(b),
	})
	return room
}

// teardownLocked is idempotent: a second teardown of the same room is a
// no-op, which guards both members disconnecting near-simultaneously. The
// ended broadcast goes out before the busy index is cleared, inside the same
// critical section, so connect-requests for the freed identities observe
// teardown as atomic.
func (s *Service) teardownLocked(rid domain.RoomID, reason string) {
	room, ok := s.rooms[rid]
	if !ok {
		return
	}
	s.broadcastRoomLocked(room, core.Ended{Type: core.EvEnded, RoomID: rid, Reason: reason})
	delete(s.busy, room.A)
	delete(s.busy, room.B)
	delete(s.rooms, rid)
	log.Info().Str("module", "app.rooms").Str("room", string(rid)).Str("reason", reason).Msg("room torn down")
}

// Leave tears the room down with reason "left". Unknown rooms and
// non-members are no-ops so duplicate leaves stay harmless.
func (s *Service) Leave(roomID, userID string) *core.RequestError {
	if roomID == "" || userID == "" {
		return core.Invalid("missing id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[domain.RoomID(roomID)]
	if !ok {
		return nil
	}
	if !room.Has(domain.Identity(userID)) {
		return nil
	}
	s.teardownLocked(room.ID, core.ReasonLeft)
	return nil
}
