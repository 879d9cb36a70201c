package calculator

import (
	log "github.com/sirupsen/logrus"

	"reactorloop/correlation"
	"reactorloop/model"
)

// PrimaryLoopAnalysis 主回路热工分析，总压降 = 管道压降 + 三项固定压降
func PrimaryLoopAnalysis(p model.Parameters, c PrimaryLoopConstants) (model.PrimaryLoopResult, error) {
	if err := p.Validate(); err != nil {
		return model.PrimaryLoopResult{}, err
	}
	if err := c.Validate(); err != nil {
		return model.PrimaryLoopResult{}, err
	}

	m := massFlowRate(p)
	v := m / (p.Density * circleArea(c.PipeInnerDiameter))
	re, err := correlation.Reynolds(p.Density, v, c.PipeInnerDiameter, p.Viscosity)
	if err != nil {
		return model.PrimaryLoopResult{}, err
	}
	dp, err := correlation.DarcyPressureDrop(c.FrictionFactor, c.PipeLength, c.PipeInnerDiameter, p.Density, v)
	if err != nil {
		return model.PrimaryLoopResult{}, err
	}

	var r model.PrimaryLoopResult
	r[model.LoopFlowVelocity] = v
	r[model.LoopReynolds] = re
	r[model.LoopTotalPressureDrop] = dp + c.FixedLosses()
	r[model.LoopPipePressureDrop] = dp
	if err := finite(model.StagePrimaryLoop, r[:]); err != nil {
		return model.PrimaryLoopResult{}, err
	}
	log.WithFields(log.Fields{
		"velocity":   v,
		"re":         re,
		"pipe_drop":  dp,
		"total_drop": r[model.LoopTotalPressureDrop],
	}).Debug("主回路分析完成")
	return r, nil
}
