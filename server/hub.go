package server

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"reactorloop/calculator"
	"reactorloop/model"
	"reactorloop/moody"
	"reactorloop/report"
)

// 请求消息类型
const (
	MsgParams       = "params"
	MsgMeasurements = "measurements"
	MsgStart        = "start"
	MsgMoody        = "moody"
	MsgStop         = "stop"
)

// 响应消息类型
const (
	MsgParamsSet       = "paramsSet"
	MsgMeasurementsSet = "measurementsSet"
	MsgResult          = "result"
	MsgStopped         = "stopped"
	MsgError           = "error"
)

// 理论曲线取样
type CurveRange struct {
	ReMin  float64
	ReMax  float64
	Points int
}

// start 的响应内容
type ResultPayload struct {
	Report *model.Report    `json:"report"`
	Charts report.ChartData `json:"charts"`
}

// moody 的响应内容
type MoodyPayload struct {
	Friction model.FrictionResult `json:"friction"`
	Data     report.MoodyData     `json:"data"`
}

// Hub 对应一个 websocket 连接，保存该连接上设置的参数和测量数据。
// 请求在 handleRequest 中依次处理，响应只在 handleResponse 中写回连接。
type Hub struct {
	c      *calculator.Calculator
	curves CurveRange
	conn   *websocket.Conn

	params model.Parameters
	rows   []model.MeasurementRow

	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	done     chan struct{}
	stopOnce sync.Once
}

func NewHub(c *calculator.Calculator, params model.Parameters, curves CurveRange) *Hub {
	return &Hub{
		c:      c,
		curves: curves,
		params: params,
		rows:   model.DefaultMeasurements(),
		msg:    make(chan model.Msg, 10),
		reply:  make(chan model.Msg, 10),
		done:   make(chan struct{}),
	}
}

func (h *Hub) close() {
	h.stopOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) send(m model.Msg) {
	select {
	case h.reply <- m:
	case <-h.done:
	}
}

func (h *Hub) sendError(err error) {
	log.WithError(err).Warn("请求处理失败")
	h.send(model.Msg{Type: MsgError, Content: err.Error()})
}

func (h *Hub) sendJSON(typ string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.sendError(err)
		return
	}
	h.send(model.Msg{Type: typ, Content: string(data)})
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			if err := h.conn.WriteJSON(&reply); err != nil {
				log.WithError(err).Warn("写入响应失败")
				h.close()
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			h.dispatch(msg)
		case <-h.done:
			return
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) {
	switch msg.Type {
	case MsgParams:
		var p model.Parameters
		if err := json.Unmarshal([]byte(msg.Content), &p); err != nil {
			h.sendError(fmt.Errorf("invalid parameters: %w", err))
			return
		}
		if err := p.Validate(); err != nil {
			h.sendError(err)
			return
		}
		h.params = p
		log.WithFields(log.Fields{
			"thermal_power":      p.ThermalPower,
			"inlet_temperature":  p.InletTemperature,
			"outlet_temperature": p.OutletTemperature,
		}).Info("设置反应堆参数")
		h.send(model.Msg{Type: MsgParamsSet, Content: "parameters are set"})
	case MsgMeasurements:
		var rows []model.MeasurementRow
		if err := json.Unmarshal([]byte(msg.Content), &rows); err != nil {
			h.sendError(fmt.Errorf("invalid measurements: %w", err))
			return
		}
		if err := model.CheckMeasurements(rows); err != nil {
			h.sendError(err)
			return
		}
		h.rows = rows
		log.WithField("rows", len(rows)).Info("设置测量数据")
		h.send(model.Msg{Type: MsgMeasurementsSet, Content: "measurements are set"})
	case MsgStart:
		// 先生成理论曲线，取样范围错误时不进行计算
		curves, err := moody.ReferenceCurves(h.curves.ReMin, h.curves.ReMax, h.curves.Points)
		if err != nil {
			h.sendError(err)
			return
		}
		r := h.c.Run(h.params, h.rows)
		h.sendJSON(MsgResult, ResultPayload{Report: r, Charts: report.Charts(r, curves)})
	case MsgMoody:
		curves, err := moody.ReferenceCurves(h.curves.ReMin, h.curves.ReMax, h.curves.Points)
		if err != nil {
			h.sendError(err)
			return
		}
		res, cmp, err := h.c.Friction(h.rows)
		if err != nil {
			h.sendError(err)
			return
		}
		h.sendJSON(MsgMoody, MoodyPayload{Friction: res, Data: report.MoodyData{Curves: curves, Points: cmp}})
	case MsgStop:
		h.send(model.Msg{Type: MsgStopped, Content: "stopped"})
	default:
		h.sendError(fmt.Errorf("no such type: %q", msg.Type))
	}
}
