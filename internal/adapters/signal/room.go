package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
)

func (ctl *ChatWSController) handleLeave(cid core.ConnID, c *WsChatConn, data []byte) {
	var p struct {
		Type   string `json:"type"`
		RoomID string `json:"roomId"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("cid", string(cid)).Msg("bad leave payload")
		ctl.ack(c, "leave", core.Invalid("bad payload"))
		return
	}
	ctl.ack(c, "leave", ctl.Svc.Leave(p.RoomID, p.UserID))
}
