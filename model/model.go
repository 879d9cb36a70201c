package model

import "fmt"

// 实验测量数据：体积流量 m^3/h，温度 ℃，压降 kPa
type MeasurementRow struct {
	FlowRate     float64 `json:"flow_rate" yaml:"flow_rate"`
	Temperature  float64 `json:"temperature" yaml:"temperature"`
	PressureDrop float64 `json:"pressure_drop" yaml:"pressure_drop"`
}

// 6 组参考测量数据
func DefaultMeasurements() []MeasurementRow {
	return []MeasurementRow{
		{FlowRate: 2.49, Temperature: 34.4, PressureDrop: 4.04},
		{FlowRate: 2.17, Temperature: 34.8, PressureDrop: 3.37},
		{FlowRate: 1.24, Temperature: 34.9, PressureDrop: 1.82},
		{FlowRate: 0.84, Temperature: 35.1, PressureDrop: 1.37},
		{FlowRate: 0.53, Temperature: 35.1, PressureDrop: 1.34},
		{FlowRate: 2.89, Temperature: 35.5, PressureDrop: 5.03},
	}
}

// CheckMeasurements 只检查结构，数值由分析函数校验
func CheckMeasurements(rows []MeasurementRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: measurement table is empty", ErrTableShape)
	}
	return nil
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}
