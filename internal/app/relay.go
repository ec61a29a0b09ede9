package app

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
	"github.com/dvelts/pairchat/internal/domain"
)

// Message relays chat text to both members of the room, sender included.
// Malformed or spoofed frames are dropped silently: no ack exists for relay
// events. The timestamp is the server clock at receipt, unix milliseconds.
func (s *Service) Message(roomID, senderID, text string) {
	text = strings.TrimSpace(text)
	if roomID == "" || senderID == "" || text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[domain.RoomID(roomID)]
	if !ok {
		return
	}
	if !room.Has(domain.Identity(senderID)) {
		log.Debug().Str("module", "app.relay").
			Str("room", roomID).Str("sender", senderID).Msg("message from non-member dropped")
		return
	}

	s.broadcastRoomLocked(room, core.Message{
		Type:     core.EvMessage,
		RoomID:   room.ID,
		SenderID: senderID,
		Text:     text,
		TS:       time.Now().UnixMilli(),
	})
}

// Typing relays an ephemeral typing flag to the room scope. No debouncing
// happens here; flood control is the client's problem.
func (s *Service) Typing(roomID, userID string, isTyping bool) {
	if roomID == "" || userID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[domain.RoomID(roomID)]
	if !ok {
		return
	}
	if !room.Has(domain.Identity(userID)) {
		return
	}

	s.broadcastRoomLocked(room, core.Typing{
		Type:     core.EvTyping,
		RoomID:   room.ID,
		UserID:   userID,
		IsTyping: isTyping,
	})
}
