package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"reactorloop/model"
	"reactorloop/moody"
)

// Calculator 持有各阶段的常数表，三个回路分析阶段互不依赖
type Calculator struct {
	constants Constants
	friction  *moody.Analyzer
}

func NewCalculator(constants Constants, friction *moody.Analyzer) *Calculator {
	if friction == nil {
		friction = moody.DefaultAnalyzer()
	}
	log.WithFields(log.Fields{
		"porosity":           constants.Core.Porosity,
		"hydraulic_diameter": constants.Core.HydraulicDiameter,
		"sg_overall_htc":     constants.SteamGenerator.OverallHTC,
		"loop_pipe_diameter": constants.PrimaryLoop.PipeInnerDiameter,
		"loop_fixed_losses":  constants.PrimaryLoop.FixedLosses(),
		"friction_viscosity": friction.Viscosity.Mode().String(),
	}).Info("设置计算常数")
	return &Calculator{
		constants: constants,
		friction:  friction,
	}
}

func DefaultCalculator() *Calculator {
	return NewCalculator(DefaultConstants(), moody.DefaultAnalyzer())
}

func (c *Calculator) Constants() Constants {
	return c.constants
}

func stageError(stage string, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}

func (c *Calculator) Core(p model.Parameters) (model.CoreResult, error) {
	r, err := CoreThermalAnalysis(p, c.constants.Core)
	if err != nil {
		return r, stageError(model.StageCore, err)
	}
	return r, nil
}

func (c *Calculator) SteamGenerator(p model.Parameters) (model.SteamGeneratorResult, error) {
	r, err := SteamGeneratorAnalysis(p, c.constants.SteamGenerator)
	if err != nil {
		return r, stageError(model.StageSteamGenerator, err)
	}
	return r, nil
}

func (c *Calculator) PrimaryLoop(p model.Parameters) (model.PrimaryLoopResult, error) {
	r, err := PrimaryLoopAnalysis(p, c.constants.PrimaryLoop)
	if err != nil {
		return r, stageError(model.StagePrimaryLoop, err)
	}
	return r, nil
}

// Friction 计算实验数据的摩擦系数并与理论关联式对比
func (c *Calculator) Friction(rows []model.MeasurementRow) (model.FrictionResult, []model.Comparison, error) {
	res, err := c.friction.Analyze(rows)
	if err != nil {
		return nil, nil, stageError(model.StageFriction, err)
	}
	cmp, err := moody.Compare(res)
	if err != nil {
		return nil, nil, stageError(model.StageFriction, err)
	}
	return res, cmp, nil
}
