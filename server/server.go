package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"reactorloop/calculator"
	"reactorloop/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	c        *calculator.Calculator
	params   model.Parameters
	curves   CurveRange
}

func NewServer(addr string, upgrader websocket.Upgrader, c *calculator.Calculator, params model.Parameters, curves CurveRange) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		c:        c,
		params:   params,
		curves:   curves,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket 升级失败")
		return
	}
	defer conn.Close()

	hub := NewHub(s.c, s.params, s.curves)
	hub.conn = conn
	defer hub.close()
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", r.RemoteAddr).Info("连接建立")
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("连接关闭")
			return
		}
		select {
		case hub.msg <- msg:
		case <-hub.done:
			return
		}
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.addr).Info("服务启动")
	return http.ListenAndServe(s.addr, s.Handler())
}
