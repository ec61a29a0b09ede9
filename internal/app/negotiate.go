package app

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
	"github.com/dvelts/pairchat/internal/domain"
)

// ConnectRequest starts a negotiation: after every gate passes, the target
// gets an incoming-invite and the initiator an ok ack. Each gate
// short-circuits; in particular a busy target must not fall through to
// emitting the invite.
func (s *Service) ConnectRequest(cid core.ConnID, fromID, toID string) *core.RequestError {
	if fromID == "" || toID == "" {
		return core.Invalid("missing id")
	}
	if fromID == toID {
		return core.Invalid("cannot invite yourself")
	}
	from, to := domain.Identity(fromID), domain.Identity(toID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, inRoom := s.busy[from]; inRoom {
		s.connectErrorLocked(cid, core.CodeBusy, toID)
		return core.Busy("already in a room")
	}
	targetCID, online := s.byIdentity[to]
	if !online {
		s.connectErrorLocked(cid, core.CodeOffline, toID)
		return core.Offline("target offline")
	}
	if _, inRoom := s.busy[to]; inRoom {
		s.connectErrorLocked(cid, core.CodeBusy, toID)
		return core.Busy("target busy")
	}

	inviteID := uuid.NewString()
	s.pushToLocked(targetCID, core.IncomingInvite{
		Type:     core.EvIncomingInvite,
		FromID:   fromID,
		ToID:     toID,
		InviteID: inviteID,
	})
	log.Info().Str("module", "app.negotiate").
		Str("from", fromID).Str("to", toID).Str("invite", inviteID).Msg("invite sent")
	return nil
}

// Accept resolves an invite. The server keeps no invite state, so inviteID is
// only a correlation token; everything is re-checked against live presence,
// which may have moved since the invite was sent.
func (s *Service) Accept(cid core.ConnID, fromID, toID, inviteID string) *core.RequestError {
	if fromID == "" || toID == "" {
		return core.Invalid("missing id")
	}
	if fromID == toID {
		return core.Invalid("cannot pair with yourself")
	}
	from, to := domain.Identity(fromID), domain.Identity(toID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, inRoom := s.busy[from]; inRoom {
		return core.Busy("initiator busy")
	}
	if _, inRoom := s.busy[to]; inRoom {
		return core.Busy("already in a room")
	}
	if _, online := s.byIdentity[from]; !online {
		return core.Offline("initiator gone")
	}
	if _, online := s.byIdentity[to]; !online {
		return core.Offline("accepter gone")
	}

	room := s.createRoomLocked(from, to)
	log.Info().Str("module", "app.negotiate").
		Str("from", fromID).Str("to", toID).Str("invite", inviteID).Str("room", string(room.ID)).Msg("invite accepted")
	return nil
}

// Reject is always safe: no room exists yet, so the only effect is a
// negotiation-failed signal to the initiator, if still connected.
func (s *Service) Reject(cid core.ConnID, fromID, toID, inviteID string) *core.RequestError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if initiatorCID, online := s.byIdentity[domain.Identity(fromID)]; online {
		s.pushToLocked(initiatorCID, core.ConnectError{
			Type: core.EvConnectError,
			Code: core.CodeRejected,
			ToID: toID,
		})
	}
	log.Info().Str("module", "app.negotiate").
		Str("from", fromID).Str("to", toID).Str("invite", inviteID).Msg("invite rejected")
	return nil
}
