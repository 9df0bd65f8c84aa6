package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pochita1998/velocity-framework/pkg/resource"
	"github.com/pochita1998/velocity-framework/pkg/velocity"
)

// devtoolsFrame is one inspection sample pushed to connected devtools
// clients: the metric counts plus full signal and resource tables.
type devtoolsFrame struct {
	Time          time.Time             `json:"time"`
	SignalCount   int                   `json:"signalCount"`
	EffectCount   int                   `json:"effectCount"`
	ResourceCount int                   `json:"resourceCount"`
	Signals       []velocity.SignalInfo `json:"signals"`
	Resources     []resource.EntryInfo  `json:"resources"`
}

var devtoolsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// sampleFrame captures the current inspection state.
func (s *Server) sampleFrame() devtoolsFrame {
	m := s.rt.Metrics()
	return devtoolsFrame{
		Time:          time.Now(),
		SignalCount:   m.SignalCount,
		EffectCount:   m.EffectCount,
		ResourceCount: s.cache.Len(),
		Signals:       s.rt.Signals(),
		Resources:     s.cache.Entries(),
	}
}

// handleDevtools upgrades the connection and streams inspection frames
// at the configured interval until the client disconnects.
func (s *Server) handleDevtools(w http.ResponseWriter, r *http.Request) {
	conn, err := devtoolsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("devtools upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("devtools client connected", "remote", conn.RemoteAddr())

	// Discard inbound messages; the read loop only notices disconnects.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.config.DevtoolsInterval)
	defer ticker.Stop()

	// First frame immediately, then on every tick.
	if err := conn.WriteJSON(s.sampleFrame()); err != nil {
		return
	}
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteJSON(s.sampleFrame()); err != nil {
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure) {
					s.logger.Error("devtools write failed", "error", err)
				}
				return
			}
		}
	}
}
