package app

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
	"github.com/dvelts/pairchat/internal/domain"
)

// pushLocked encodes and fires v at one connection. Delivery is best-effort:
// a full send buffer drops the frame. Callers hold s.mu.
func (s *Service) pushLocked(conn core.SignalConnection, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.service").Msg("push marshal")
		return
	}
	if err := conn.TrySend(b); err != nil {
		log.Warn().Err(err).Str("module", "app.service").Msg("push dropped")
	}
}

func (s *Service) pushToLocked(cid core.ConnID, v any) {
	if conn, ok := s.conns[cid]; ok {
		s.pushLocked(conn, v)
	}
}

// broadcastRoomLocked fans v out to every member of room that still resolves
// to a live connection through the registry. Resolving at send time keeps the
// scope consistent with re-registration: the current holder of an identity
// receives the room's traffic.
func (s *Service) broadcastRoomLocked(room *domain.Room, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.service").Msg("broadcast marshal")
		return
	}
	for _, id := range room.Members() {
		cid, ok := s.byIdentity[id]
		if !ok {
			continue
		}
		conn, ok := s.conns[cid]
		if !ok {
			continue
		}
		if err := conn.TrySend(b); err != nil {
			log.Warn().Err(err).Str("module", "app.service").
				Str("identity", string(id)).Str("room", string(room.ID)).Msg("broadcast dropped")
		}
	}
}

// connectErrorLocked pushes a connect-error frame to cid alongside the ack.
func (s *Service) connectErrorLocked(cid core.ConnID, code core.Code, toID string) {
	s.pushToLocked(cid, core.ConnectError{Type: core.EvConnectError, Code: code, ToID: toID})
}
