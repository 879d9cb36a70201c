package calculator

import (
	"math"

	log "github.com/sirupsen/logrus"

	"reactorloop/correlation"
	"reactorloop/model"
)

// SteamGeneratorAnalysis 蒸汽发生器热工分析
//
// 管内流速按 power/(cp·ΔT) 计算，即质量流量本身，量纲上并不是流速
// （缺少密度和流通面积），管内压降也基于这个量，以管内半径作为特征长度。
func SteamGeneratorAnalysis(p model.Parameters, c SteamGeneratorConstants) (model.SteamGeneratorResult, error) {
	if err := p.Validate(); err != nil {
		return model.SteamGeneratorResult{}, err
	}
	if err := c.Validate(); err != nil {
		return model.SteamGeneratorResult{}, err
	}

	lmtd, err := correlation.LMTD(p.OutletTemperature, p.InletTemperature)
	if err != nil {
		return model.SteamGeneratorResult{}, err
	}
	area := p.ThermalPower / (c.OverallHTC * lmtd)
	// 单根管外表面积
	tubeArea := math.Pi * c.TubeOuterDiameter * c.TubeLength
	tubes := area / tubeArea

	vTube := massFlowRate(p)
	dp, err := correlation.DarcyPressureDrop(c.FrictionFactor, c.TubeLength, c.TubeInnerDiameter/2, p.Density, vTube)
	if err != nil {
		return model.SteamGeneratorResult{}, err
	}

	var r model.SteamGeneratorResult
	r[model.SGHeatTransferArea] = area
	r[model.SGTubeCount] = tubes
	r[model.SGTubeVelocity] = vTube
	r[model.SGTubePressureDrop] = dp
	r[model.SGOverallHeatTransferCoefficient] = c.OverallHTC
	if err := finite(model.StageSteamGenerator, r[:]); err != nil {
		return model.SteamGeneratorResult{}, err
	}
	log.WithFields(log.Fields{
		"lmtd":  lmtd,
		"area":  area,
		"tubes": tubes,
	}).Debug("蒸汽发生器分析完成")
	return r, nil
}
