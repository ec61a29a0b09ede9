package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
)

// Relay frames carry no ack; malformed ones are dropped on the floor.

func (ctl *ChatWSController) handleMessage(cid core.ConnID, data []byte) {
	var p struct {
		Type     string `json:"type"`
		RoomID   string `json:"roomId"`
		SenderID string `json:"senderId"`
		Text     string `json:"text"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("bad message payload")
		return
	}
	ctl.Svc.Message(p.RoomID, p.SenderID, p.Text)
}

func (ctl *ChatWSController) handleTyping(cid core.ConnID, data []byte) {
	var p struct {
		Type     string `json:"type"`
		RoomID   string `json:"roomId"`
		UserID   string `json:"userId"`
		IsTyping bool   `json:"isTyping"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("bad typing payload")
		return
	}
	ctl.Svc.Typing(p.RoomID, p.UserID, p.IsTyping)
}
