package signal

import "github.com/dvelts/pairchat/internal/core"

func (ctl *ChatWSController) handlePing(c *WsChatConn) {
	ctl.sendJSON(c, core.Pong{Type: core.EvPong})
}
