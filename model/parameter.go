package model

import (
	"fmt"
	"math"
)

// 绝对零度偏移
const KelvinOffset = 273.15

// 参数表的一行：名称，数值，单位
type ParameterEntry struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// 参数表中各项的固定位置，只在 ParametersFromTable / Table 中使用
const (
	IdxThermalPower = iota
	IdxInletTemperature
	IdxOutletTemperature
	IdxSystemPressure
	IdxCoreDiameter
	IdxCoreHeight
	IdxDensity
	IdxSpecificHeat
	IdxViscosity
	IdxThermalConductivity

	ParameterCount
)

var parameterLayout = [ParameterCount]struct {
	name string
	unit string
}{
	{"反应堆热功率", "W"},
	{"反应堆冷却剂入口温度", "℃"},
	{"反应堆冷却剂出口温度", "℃"},
	{"系统压力", "Pa"},
	{"堆芯直径", "m"},
	{"堆芯高度", "m"},
	{"密度", "kg/m^3"},
	{"比热容", "J/(kg·K)"},
	{"动力粘度", "Pa·s"},
	{"导热系数", "W/(m·K)"},
}

// 反应堆设计参数
// 物性参数为氦气在平均温度 500℃ 下的取值
type Parameters struct {
	ThermalPower        float64 `json:"thermal_power" yaml:"thermal_power"`               // 反应堆热功率 W
	InletTemperature    float64 `json:"inlet_temperature" yaml:"inlet_temperature"`       // 冷却剂入口温度 ℃
	OutletTemperature   float64 `json:"outlet_temperature" yaml:"outlet_temperature"`     // 冷却剂出口温度 ℃
	SystemPressure      float64 `json:"system_pressure" yaml:"system_pressure"`           // 系统压力 Pa
	CoreDiameter        float64 `json:"core_diameter" yaml:"core_diameter"`               // 堆芯直径 m
	CoreHeight          float64 `json:"core_height" yaml:"core_height"`                   // 堆芯高度 m
	Density             float64 `json:"density" yaml:"density"`                           // 密度 kg/m^3
	SpecificHeat        float64 `json:"specific_heat" yaml:"specific_heat"`               // 比热容 J/(kg·K)
	Viscosity           float64 `json:"viscosity" yaml:"viscosity"`                       // 动力粘度 Pa·s
	ThermalConductivity float64 `json:"thermal_conductivity" yaml:"thermal_conductivity"` // 导热系数 W/(m·K)
}

func DefaultParameters() Parameters {
	return Parameters{
		ThermalPower:        3e6,
		InletTemperature:    250,
		OutletTemperature:   750,
		SystemPressure:      7e6,
		CoreDiameter:        2.4,
		CoreHeight:          4.0,
		Density:             0.48,
		SpecificHeat:        5193,
		Viscosity:           3.95e-5,
		ThermalConductivity: 0.304,
	}
}

// DefaultParameterTable 返回按规定顺序排列的参数表
func DefaultParameterTable() []ParameterEntry {
	return DefaultParameters().Table()
}

func (p Parameters) values() [ParameterCount]float64 {
	return [ParameterCount]float64{
		p.ThermalPower,
		p.InletTemperature,
		p.OutletTemperature,
		p.SystemPressure,
		p.CoreDiameter,
		p.CoreHeight,
		p.Density,
		p.SpecificHeat,
		p.Viscosity,
		p.ThermalConductivity,
	}
}

// Table 将参数还原为有序参数表
func (p Parameters) Table() []ParameterEntry {
	values := p.values()
	table := make([]ParameterEntry, ParameterCount)
	for i := range table {
		table[i] = ParameterEntry{
			Name:  parameterLayout[i].name,
			Value: values[i],
			Unit:  parameterLayout[i].unit,
		}
	}
	return table
}

// ParametersFromTable 从有序参数表构建参数，长度或顺序不对时返回 ErrTableShape。
// 顺序通过每个位置上的单位进行校验。
func ParametersFromTable(entries []ParameterEntry) (Parameters, error) {
	if len(entries) != ParameterCount {
		return Parameters{}, fmt.Errorf("%w: parameter table has %d entries, want %d",
			ErrTableShape, len(entries), ParameterCount)
	}
	for i, e := range entries {
		if e.Unit != parameterLayout[i].unit {
			return Parameters{}, fmt.Errorf("%w: entry %d (%s) has unit %q, want %q for %s",
				ErrTableShape, i, e.Name, e.Unit, parameterLayout[i].unit, parameterLayout[i].name)
		}
	}
	return Parameters{
		ThermalPower:        entries[IdxThermalPower].Value,
		InletTemperature:    entries[IdxInletTemperature].Value,
		OutletTemperature:   entries[IdxOutletTemperature].Value,
		SystemPressure:      entries[IdxSystemPressure].Value,
		CoreDiameter:        entries[IdxCoreDiameter].Value,
		CoreHeight:          entries[IdxCoreHeight].Value,
		Density:             entries[IdxDensity].Value,
		SpecificHeat:        entries[IdxSpecificHeat].Value,
		Viscosity:           entries[IdxViscosity].Value,
		ThermalConductivity: entries[IdxThermalConductivity].Value,
	}, nil
}

// 冷却剂温升 (K)
func (p Parameters) DeltaT() float64 {
	return p.OutletTemperature - p.InletTemperature
}

// Validate 检查公式中作为除数或需要为正的物理量
func (p Parameters) Validate() error {
	const fn = "parameters"
	values := p.values()
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalid(fn, parameterLayout[i].name, v)
		}
	}
	positive := []int{IdxCoreDiameter, IdxCoreHeight, IdxDensity, IdxSpecificHeat, IdxViscosity, IdxThermalConductivity}
	for _, i := range positive {
		if values[i] <= 0 {
			return invalid(fn, parameterLayout[i].name, values[i])
		}
	}
	if p.ThermalPower < 0 {
		return invalid(fn, parameterLayout[IdxThermalPower].name, p.ThermalPower)
	}
	if p.InletTemperature <= -KelvinOffset {
		return invalid(fn, parameterLayout[IdxInletTemperature].name, p.InletTemperature)
	}
	if p.OutletTemperature <= -KelvinOffset {
		return invalid(fn, parameterLayout[IdxOutletTemperature].name, p.OutletTemperature)
	}
	if p.DeltaT() == 0 {
		return &DomainError{Func: fn, Quantity: "degenerate ΔT (T_out - T_in)", Value: 0, Err: ErrInvalidInput}
	}
	if p.DeltaT() < 0 {
		return &DomainError{Func: fn, Quantity: "inverted ΔT (T_out - T_in)", Value: p.DeltaT(), Err: ErrInvalidInput}
	}
	return nil
}
