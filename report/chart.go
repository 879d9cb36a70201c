package report

import (
	"reactorloop/model"
	"reactorloop/moody"
)

// 绘图层使用的数据，只包含数值和标签

type Bar struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

type MoodyData struct {
	Curves []moody.CurvePoint `json:"curves" yaml:"curves"`
	Points []model.Comparison `json:"points" yaml:"points"`
}

type ChartData struct {
	PressureDrops  []Bar      `json:"pressure_drops" yaml:"pressure_drops"`   // 压降分布
	Temperatures   []Bar      `json:"temperatures" yaml:"temperatures"`       // 一回路温度分布
	Velocities     []Bar      `json:"velocities" yaml:"velocities"`           // 流速分布
	PressureShares []Bar      `json:"pressure_shares" yaml:"pressure_shares"` // 压降占比 %
	Moody          *MoodyData `json:"moody,omitempty" yaml:"moody,omitempty"`
}

const (
	labelCore           = "堆芯"
	labelSteamGenerator = "蒸汽发生器"
	labelPrimaryLoop    = "主回路"
)

// Charts 从报告中提取绘图数据，失败的阶段不出现在图中
func Charts(r *model.Report, curves []moody.CurvePoint) ChartData {
	var data ChartData
	if r.Core != nil {
		data.PressureDrops = append(data.PressureDrops, Bar{labelCore, r.Core.PressureDrop()})
		data.Velocities = append(data.Velocities, Bar{labelCore, r.Core.FlowVelocity()})
	}
	if r.SteamGenerator != nil {
		data.PressureDrops = append(data.PressureDrops, Bar{labelSteamGenerator, r.SteamGenerator.TubePressureDrop()})
		data.Velocities = append(data.Velocities, Bar{labelSteamGenerator, r.SteamGenerator.TubeVelocity()})
	}
	if r.PrimaryLoop != nil {
		data.PressureDrops = append(data.PressureDrops, Bar{labelPrimaryLoop, r.PrimaryLoop.PipePressureDrop()})
		data.Velocities = append(data.Velocities, Bar{labelPrimaryLoop, r.PrimaryLoop.FlowVelocity()})
	}

	total := 0.0
	for _, b := range data.PressureDrops {
		total += b.Value
	}
	if total > 0 {
		for _, b := range data.PressureDrops {
			data.PressureShares = append(data.PressureShares, Bar{b.Label, b.Value / total * 100})
		}
	}

	p := r.Parameters
	data.Temperatures = []Bar{
		{"堆芯入口", p.InletTemperature},
		{"堆芯出口", p.OutletTemperature},
		{"蒸汽发生器入口", p.OutletTemperature},
		{"蒸汽发生器出口", p.InletTemperature},
	}

	if len(r.Comparison) > 0 || len(curves) > 0 {
		data.Moody = &MoodyData{Curves: curves, Points: r.Comparison}
	}
	return data
}
