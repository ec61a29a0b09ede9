package core

import "github.com/dvelts/pairchat/internal/domain"

// Server->client event types. Every frame carries one of these in "type".
const (
	EvAck            = "ack"
	EvRegistered     = "registered"
	EvIncomingInvite = "incoming-invite"
	EvConnectError   = "connect-error"
	EvConnected      = "connected"
	EvMessage        = "message"
	EvTyping         = "typing"
	EvEnded          = "ended"
	EvPong           = "pong"
)

// Room teardown reasons, visible on the wire in Ended.
const (
	ReasonLeft       = "left"
	ReasonDisconnect = "disconnect"
)

// Ack answers one request event on the requesting connection.
type Ack struct {
	Type string `json:"type"`
	Op   string `json:"op"`
	OK   bool   `json:"ok"`
	Code Code   `json:"code,omitempty"`
}

type Registered struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type IncomingInvite struct {
	Type     string `json:"type"`
	FromID   string `json:"fromId"`
	ToID     string `json:"toId"`
	InviteID string `json:"inviteId"`
}

type ConnectError struct {
	Type   string `json:"type"`
	Code   Code   `json:"code"`
	Reason string `json:"reason,omitempty"`
	ToID   string `json:"toId,omitempty"`
}

type Connected struct {
	Type   string        `json:"type"`
	RoomID domain.RoomID `json:"roomId"`
	A      string        `json:"a"`
	B      string        `json:"b"`
}

type Message struct {
	Type     string        `json:"type"`
	RoomID   domain.RoomID `json:"roomId"`
	SenderID string        `json:"senderId"`
	Text     string        `json:"text"`
	TS       int64         `json:"ts"`
}

type Typing struct {
	Type     string        `json:"type"`
	RoomID   domain.RoomID `json:"roomId"`
	UserID   string        `json:"userId"`
	IsTyping bool          `json:"isTyping"`
}

type Ended struct {
	Type   string        `json:"type"`
	RoomID domain.RoomID `json:"roomId"`
	Reason string        `json:"reason"`
}

type Pong struct {
	Type string `json:"type"`
}
