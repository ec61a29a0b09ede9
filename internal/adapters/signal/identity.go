package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
)

func (ctl *ChatWSController) handleRegister(cid core.ConnID, c *WsChatConn, data []byte) {
	var p struct {
		Type     string `json:"type"`
		Identity string `json:"identity"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad register payload")
		ctl.ack(c, "register", core.Invalid("bad payload"))
		return
	}
	ctl.ack(c, "register", ctl.Svc.Register(cid, p.Identity))
}
