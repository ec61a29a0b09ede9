package app

import (
	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
	"github.com/dvelts/pairchat/internal/domain"
)

// Register binds rawID to cid. Last registration wins: a previous holder of
// the same identity is force-closed and unmapped before the new binding
// becomes visible, so a late event from the evicted connection can never be
// attributed to the identity.
func (s *Service) Register(cid core.ConnID, rawID string) *core.RequestError {
	id, err := domain.ParseIdentity(rawID)
	if err != nil {
		return core.Invalid(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conn, ok := s.conns[cid]
	if !ok {
		return core.Invalid("unknown connection")
	}

	if oldCID, held := s.byIdentity[id]; held && oldCID != cid {
		if oldConn, live := s.conns[oldCID]; live {
			oldConn.Close()
		}
		delete(s.conns, oldCID)
		delete(s.byConn, oldCID)
		log.Info().Str("module", "app.registry").
			Str("identity", string(id)).Str("evicted", string(oldCID)).Msg("evicted previous connection")
	}

	// A connection holds at most one identity; switching drops the old one
	// and its room, since that identity is no longer reachable.
	if prev, held := s.byConn[cid]; held && prev != id {
		delete(s.byIdentity, prev)
		if rid, inRoom := s.busy[prev]; inRoom {
			s.teardownLocked(rid, core.ReasonDisconnect)
		}
	}

	s.byIdentity[id] = cid
	s.byConn[cid] = id
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Str("identity", string(id)).Msg("registered")

	s.pushLocked(conn, core.Registered{Type: core.EvRegistered, UserID: string(id)})
	return nil
}

// Disconnect reconciles all state after a transport session ends: the
// registry entry goes first, then the member's room is torn down, so the
// teardown broadcast never resolves to the dead connection.
func (s *Service) Disconnect(cid core.ConnID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.conns, cid)
	id, ok := s.byConn[cid]
	if !ok {
		return
	}
	delete(s.byConn, cid)
	delete(s.byIdentity, id)
	log.Info().Str("module", "app.registry").Str("cid", string(cid)).Str("identity", string(id)).Msg("unregistered")

	if rid, inRoom := s.busy[id]; inRoom {
		s.teardownLocked(rid, core.ReasonDisconnect)
	}
}
