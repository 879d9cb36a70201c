package calculator

import (
	"math"

	"reactorloop/model"
)

// 各分析阶段的简化假设，集中在这里，可由配置文件覆盖

// 堆芯
type CoreConstants struct {
	Porosity          float64 `json:"porosity" yaml:"porosity"`                     // 孔隙率
	HydraulicDiameter float64 `json:"hydraulic_diameter" yaml:"hydraulic_diameter"` // 堆芯水力直径 m
	FrictionFactor    float64 `json:"friction_factor" yaml:"friction_factor"`       // 假设的摩擦因子
}

// 蒸汽发生器
type SteamGeneratorConstants struct {
	OverallHTC        float64 `json:"overall_htc" yaml:"overall_htc"`                 // 总传热系数 W/(m^2·K)
	TubeOuterDiameter float64 `json:"tube_outer_diameter" yaml:"tube_outer_diameter"` // 管外径 m
	TubeInnerDiameter float64 `json:"tube_inner_diameter" yaml:"tube_inner_diameter"` // 管内径 m
	TubeLength        float64 `json:"tube_length" yaml:"tube_length"`                 // 管长 m
	FrictionFactor    float64 `json:"friction_factor" yaml:"friction_factor"`
}

// 主回路
type PrimaryLoopConstants struct {
	PipeInnerDiameter float64 `json:"pipe_inner_diameter" yaml:"pipe_inner_diameter"` // 主管道内径 m
	PipeLength        float64 `json:"pipe_length" yaml:"pipe_length"`                 // 主管道长度 m
	FrictionFactor    float64 `json:"friction_factor" yaml:"friction_factor"`
	// 预先估算的提升压降、加速压降和局部压降 Pa
	ElevationLoss    float64 `json:"elevation_loss" yaml:"elevation_loss"`
	AccelerationLoss float64 `json:"acceleration_loss" yaml:"acceleration_loss"`
	LocalLoss        float64 `json:"local_loss" yaml:"local_loss"`
}

type Constants struct {
	Core           CoreConstants           `json:"core" yaml:"core"`
	SteamGenerator SteamGeneratorConstants `json:"steam_generator" yaml:"steam_generator"`
	PrimaryLoop    PrimaryLoopConstants    `json:"primary_loop" yaml:"primary_loop"`
}

func DefaultCoreConstants() CoreConstants {
	return CoreConstants{
		Porosity:          0.4,
		HydraulicDiameter: 0.02,
		FrictionFactor:    0.02,
	}
}

func DefaultSteamGeneratorConstants() SteamGeneratorConstants {
	return SteamGeneratorConstants{
		OverallHTC:        800,
		TubeOuterDiameter: 0.019,
		TubeInnerDiameter: 0.015,
		TubeLength:        4.0,
		FrictionFactor:    0.02,
	}
}

func DefaultPrimaryLoopConstants() PrimaryLoopConstants {
	return PrimaryLoopConstants{
		PipeInnerDiameter: 0.4,
		PipeLength:        20,
		FrictionFactor:    0.02,
		ElevationLoss:     50000,
		AccelerationLoss:  30000,
		LocalLoss:         10000,
	}
}

func DefaultConstants() Constants {
	return Constants{
		Core:           DefaultCoreConstants(),
		SteamGenerator: DefaultSteamGeneratorConstants(),
		PrimaryLoop:    DefaultPrimaryLoopConstants(),
	}
}

// 三项固定压降之和
func (c PrimaryLoopConstants) FixedLosses() float64 {
	return c.ElevationLoss + c.AccelerationLoss + c.LocalLoss
}

type namedValue struct {
	name  string
	value float64
}

func checkPositive(fn string, values ...namedValue) error {
	for _, v := range values {
		if !(v.value > 0) || math.IsInf(v.value, 0) {
			return &model.DomainError{Func: fn, Quantity: v.name, Value: v.value, Err: model.ErrInvalidInput}
		}
	}
	return nil
}

func checkNonNegative(fn string, values ...namedValue) error {
	for _, v := range values {
		if !(v.value >= 0) || math.IsInf(v.value, 0) {
			return &model.DomainError{Func: fn, Quantity: v.name, Value: v.value, Err: model.ErrInvalidInput}
		}
	}
	return nil
}

func (c CoreConstants) Validate() error {
	if err := checkPositive("core constants",
		namedValue{"porosity", c.Porosity},
		namedValue{"hydraulic diameter", c.HydraulicDiameter},
	); err != nil {
		return err
	}
	if c.Porosity > 1 {
		return &model.DomainError{Func: "core constants", Quantity: "porosity", Value: c.Porosity, Err: model.ErrInvalidInput}
	}
	return checkNonNegative("core constants", namedValue{"friction factor", c.FrictionFactor})
}

func (c SteamGeneratorConstants) Validate() error {
	if err := checkPositive("steam generator constants",
		namedValue{"overall htc", c.OverallHTC},
		namedValue{"tube outer diameter", c.TubeOuterDiameter},
		namedValue{"tube inner diameter", c.TubeInnerDiameter},
		namedValue{"tube length", c.TubeLength},
	); err != nil {
		return err
	}
	return checkNonNegative("steam generator constants", namedValue{"friction factor", c.FrictionFactor})
}

func (c PrimaryLoopConstants) Validate() error {
	if err := checkPositive("primary loop constants",
		namedValue{"pipe inner diameter", c.PipeInnerDiameter},
		namedValue{"pipe length", c.PipeLength},
	); err != nil {
		return err
	}
	return checkNonNegative("primary loop constants",
		namedValue{"friction factor", c.FrictionFactor},
		namedValue{"elevation loss", c.ElevationLoss},
		namedValue{"acceleration loss", c.AccelerationLoss},
		namedValue{"local loss", c.LocalLoss},
	)
}

func (c Constants) Validate() error {
	if err := c.Core.Validate(); err != nil {
		return err
	}
	if err := c.SteamGenerator.Validate(); err != nil {
		return err
	}
	return c.PrimaryLoop.Validate()
}
