package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
	"github.com/dvelts/pairchat/internal/domain"
)

// Service owns all relay state: attached connections, the identity registry,
// the busy index and the room table. Every handler takes the one mutex for its
// whole mutation, so interleaved events never observe a torn intermediate
// state. Sends under the lock go through non-blocking TrySend only.
type Service struct {
	mu         sync.Mutex
	conns      map[core.ConnID]core.SignalConnection
	byIdentity map[domain.Identity]core.ConnID
	byConn     map[core.ConnID]domain.Identity
	busy       map[domain.Identity]domain.RoomID
	rooms      map[domain.RoomID]*domain.Room
}

func New() *Service {
	return &Service{
		conns:      make(map[core.ConnID]core.SignalConnection),
		byIdentity: make(map[domain.Identity]core.ConnID),
		byConn:     make(map[core.ConnID]domain.Identity),
		busy:       make(map[domain.Identity]domain.RoomID),
		rooms:      make(map[domain.RoomID]*domain.Room),
	}
}

// Attach makes a freshly upgraded connection addressable. It carries no
// identity until the client registers one.
func (s *Service) Attach(cid core.ConnID, conn core.SignalConnection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[cid] = conn
	log.Info().Str("module", "app.service").Str("cid", string(cid)).Msg("connection attached")
}

// IdentityOf reports the identity bound to cid, if any.
func (s *Service) IdentityOf(cid core.ConnID) (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byConn[cid]
	return id, ok
}

// ConnOf reports the live connection currently holding id.
func (s *Service) ConnOf(id domain.Identity) (core.ConnID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cid, ok := s.byIdentity[id]
	return cid, ok
}

// RoomOf is the busy-index view: the room id currently holds a seat in.
func (s *Service) RoomOf(id domain.Identity) (domain.RoomID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rid, ok := s.busy[id]
	return rid, ok
}

func (s *Service) RoomCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}
