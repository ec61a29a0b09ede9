package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dvelts/pairchat/internal/core"
)

type invitePayload struct {
	Type     string `json:"type"`
	FromID   string `json:"fromId"`
	ToID     string `json:"toId"`
	InviteID string `json:"inviteId"`
}

func (ctl *ChatWSController) handleConnectRequest(cid core.ConnID, c *WsChatConn, data []byte) {
	var p invitePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad connect-request payload")
		ctl.ack(c, "connect-request", core.Invalid("bad payload"))
		return
	}
	ctl.ack(c, "connect-request", ctl.Svc.ConnectRequest(cid, p.FromID, p.ToID))
}

func (ctl *ChatWSController) handleAccept(cid core.ConnID, c *WsChatConn, data []byte) {
	var p invitePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad accept payload")
		ctl.ack(c, "accept", core.Invalid("bad payload"))
		return
	}
	ctl.ack(c, "accept", ctl.Svc.Accept(cid, p.FromID, p.ToID, p.InviteID))
}

func (ctl *ChatWSController) handleReject(cid core.ConnID, c *WsChatConn, data []byte) {
	var p invitePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad reject payload")
		ctl.ack(c, "reject", core.Invalid("bad payload"))
		return
	}
	ctl.ack(c, "reject", ctl.Svc.Reject(cid, p.FromID, p.ToID, p.InviteID))
}
