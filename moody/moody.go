// Package moody 根据实验测得的流量和压降计算雷诺数与摩擦系数，
// 并与层流 64/Re 和 Blasius 关联式进行比较（摩迪图）。
package moody

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"reactorloop/correlation"
	"reactorloop/model"
)

const secondsPerHour = 3600

// 实验管段参数
type Constants struct {
	PipeDiameter float64 `json:"pipe_diameter" yaml:"pipe_diameter"` // 管道直径 m
	PipeLength   float64 `json:"pipe_length" yaml:"pipe_length"`     // 测压段长度 m
	Density      float64 `json:"density" yaml:"density"`             // 水的密度 kg/m^3
}

func DefaultConstants() Constants {
	return Constants{
		PipeDiameter: 0.02,
		PipeLength:   1.3,
		Density:      994,
	}
}

func (c Constants) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"pipe diameter", c.PipeDiameter},
		{"pipe length", c.PipeLength},
		{"density", c.Density},
	}
	for _, f := range fields {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return &model.DomainError{Func: "friction constants", Quantity: f.name, Value: f.value, Err: model.ErrInvalidInput}
		}
	}
	return nil
}

// 流通面积 m^2
func (c Constants) FlowArea() float64 {
	return math.Pi * (c.PipeDiameter / 2) * (c.PipeDiameter / 2)
}

type Analyzer struct {
	Constants Constants
	Viscosity *ViscosityTable
}

func NewAnalyzer(c Constants, viscosity *ViscosityTable) *Analyzer {
	if viscosity == nil {
		viscosity = DefaultViscosityTable()
	}
	return &Analyzer{Constants: c, Viscosity: viscosity}
}

func DefaultAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultConstants(), DefaultViscosityTable())
}

// 未设置粘度表时使用默认水物性表
func (a *Analyzer) viscosity() *ViscosityTable {
	if a.Viscosity == nil {
		return DefaultViscosityTable()
	}
	return a.Viscosity
}

// Analyze 逐行计算流速、雷诺数和摩擦系数，任意一行出错则整个阶段失败
func (a *Analyzer) Analyze(rows []model.MeasurementRow) (model.FrictionResult, error) {
	if err := model.CheckMeasurements(rows); err != nil {
		return nil, err
	}
	if err := a.Constants.Validate(); err != nil {
		return nil, err
	}
	table := a.viscosity()
	result := make(model.FrictionResult, len(rows))
	for i, row := range rows {
		r, err := a.analyzeRow(row, table)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		result[i] = r
	}
	log.WithFields(log.Fields{
		"rows":      len(rows),
		"viscosity": table.Mode().String(),
	}).Debug("摩擦系数计算完成")
	return result, nil
}

func checkRow(row model.MeasurementRow) error {
	const fn = "measurement"
	if !(row.FlowRate > 0) || math.IsInf(row.FlowRate, 0) {
		return &model.DomainError{Func: fn, Quantity: "flow rate", Value: row.FlowRate, Err: model.ErrInvalidInput}
	}
	if !(row.PressureDrop >= 0) || math.IsInf(row.PressureDrop, 0) {
		return &model.DomainError{Func: fn, Quantity: "pressure drop", Value: row.PressureDrop, Err: model.ErrInvalidInput}
	}
	return nil
}

func (a *Analyzer) analyzeRow(row model.MeasurementRow, table *ViscosityTable) (model.FrictionRow, error) {
	if err := checkRow(row); err != nil {
		return model.FrictionRow{}, err
	}
	q := row.FlowRate / secondsPerHour // m^3/h 转 m^3/s
	v := q / a.Constants.FlowArea()
	mu, err := table.Lookup(row.Temperature)
	if err != nil {
		return model.FrictionRow{}, err
	}
	re, err := correlation.Reynolds(a.Constants.Density, v, a.Constants.PipeDiameter, mu)
	if err != nil {
		return model.FrictionRow{}, err
	}
	p := row.PressureDrop * 1000 // kPa 转 Pa
	f, err := correlation.DarcyFrictionFactor(p, a.Constants.PipeDiameter, a.Constants.PipeLength, a.Constants.Density, v)
	if err != nil {
		return model.FrictionRow{}, err
	}
	return model.FrictionRow{v, re, f}, nil
}
