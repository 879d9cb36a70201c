package calculator

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"reactorloop/correlation"
	"reactorloop/model"
)

// 冷却剂质量流量 kg/s
func massFlowRate(p model.Parameters) float64 {
	return p.ThermalPower / (p.SpecificHeat * p.DeltaT())
}

// 圆截面面积 m^2
func circleArea(diameter float64) float64 {
	return math.Pi * (diameter / 2) * (diameter / 2)
}

// CoreThermalAnalysis 堆芯热工分析
// 摩擦因子取固定假设值，不与 Re 迭代求解
func CoreThermalAnalysis(p model.Parameters, c CoreConstants) (model.CoreResult, error) {
	if err := p.Validate(); err != nil {
		return model.CoreResult{}, err
	}
	if err := c.Validate(); err != nil {
		return model.CoreResult{}, err
	}

	m := massFlowRate(p)
	// 堆芯流通面积，按孔隙率折算
	area := circleArea(p.CoreDiameter) * c.Porosity
	v := m / (p.Density * area)

	re, err := correlation.Reynolds(p.Density, v, c.HydraulicDiameter, p.Viscosity)
	if err != nil {
		return model.CoreResult{}, err
	}
	pr, err := correlation.Prandtl(p.SpecificHeat, p.Viscosity, p.ThermalConductivity)
	if err != nil {
		return model.CoreResult{}, err
	}
	nu, err := correlation.Nusselt(re, pr)
	if err != nil {
		return model.CoreResult{}, err
	}
	h := nu * p.ThermalConductivity / c.HydraulicDiameter
	dp, err := correlation.DarcyPressureDrop(c.FrictionFactor, p.CoreHeight, c.HydraulicDiameter, p.Density, v)
	if err != nil {
		return model.CoreResult{}, err
	}

	var r model.CoreResult
	r[model.CoreMassFlowRate] = m
	r[model.CoreFlowVelocity] = v
	r[model.CoreReynolds] = re
	r[model.CorePrandtl] = pr
	r[model.CoreNusselt] = nu
	r[model.CoreHeatTransferCoefficient] = h
	r[model.CorePressureDrop] = dp
	if err := finite(model.StageCore, r[:]); err != nil {
		return model.CoreResult{}, err
	}
	log.WithFields(log.Fields{
		"mass_flow_rate": m,
		"velocity":       v,
		"re":             re,
		"pressure_drop":  dp,
	}).Debug("堆芯热工分析完成")
	return r, nil
}

// 结果中不允许出现 NaN / Inf
func finite(stage string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &model.DomainError{
				Func:     stage,
				Quantity: fmt.Sprintf("result[%d]", i),
				Value:    v,
				Err:      model.ErrInvalidInput,
			}
		}
	}
	return nil
}
