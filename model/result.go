package model

import "time"

// 分析结果为定长数组，按值返回，字段顺序固定

// 堆芯热工分析结果下标
const (
	CoreMassFlowRate = iota
	CoreFlowVelocity
	CoreReynolds
	CorePrandtl
	CoreNusselt
	CoreHeatTransferCoefficient
	CorePressureDrop
)

type CoreResult [7]float64

func (r CoreResult) MassFlowRate() float64 { return r[CoreMassFlowRate] }
func (r CoreResult) FlowVelocity() float64 { return r[CoreFlowVelocity] }
func (r CoreResult) Reynolds() float64 { return r[CoreReynolds] }
func (r CoreResult) Prandtl() float64 { return r[CorePrandtl] }
func (r CoreResult) Nusselt() float64 { return r[CoreNusselt] }
func (r CoreResult) HeatTransferCoefficient() float64 { return r[CoreHeatTransferCoefficient] }
func (r CoreResult) PressureDrop() float64 { return r[CorePressureDrop] }

// 蒸汽发生器分析结果下标
const (
	SGHeatTransferArea = iota
	SGTubeCount
	SGTubeVelocity
	SGTubePressureDrop
	SGOverallHeatTransferCoefficient
)

type SteamGeneratorResult [5]float64

func (r SteamGeneratorResult) HeatTransferArea() float64 { return r[SGHeatTransferArea] }

// 管数不取整，显示时再处理
func (r SteamGeneratorResult) TubeCount() float64 { return r[SGTubeCount] }
func (r SteamGeneratorResult) TubeVelocity() float64 { return r[SGTubeVelocity] }
func (r SteamGeneratorResult) TubePressureDrop() float64 { return r[SGTubePressureDrop] }
func (r SteamGeneratorResult) OverallHeatTransferCoefficient() float64 {
	return r[SGOverallHeatTransferCoefficient]
}

// 主回路分析结果下标
const (
	LoopFlowVelocity = iota
	LoopReynolds
	LoopTotalPressureDrop
	LoopPipePressureDrop
)

type PrimaryLoopResult [4]float64

func (r PrimaryLoopResult) FlowVelocity() float64 { return r[LoopFlowVelocity] }
func (r PrimaryLoopResult) Reynolds() float64 { return r[LoopReynolds] }
func (r PrimaryLoopResult) TotalPressureDrop() float64 { return r[LoopTotalPressureDrop] }
func (r PrimaryLoopResult) PipePressureDrop() float64 { return r[LoopPipePressureDrop] }

// 摩擦系数分析每行结果：流速，雷诺数，摩擦系数
const (
	FrictionVelocity = iota
	FrictionReynolds
	FrictionFactor
)

type FrictionRow [3]float64

func (r FrictionRow) Velocity() float64 { return r[FrictionVelocity] }
func (r FrictionRow) Reynolds() float64 { return r[FrictionReynolds] }
func (r FrictionRow) FrictionFactor() float64 { return r[FrictionFactor] }

type FrictionResult []FrictionRow

// 实验点与理论关联式的对比
type Comparison struct {
	Row      int     `json:"row" yaml:"row"`
	Reynolds float64 `json:"reynolds" yaml:"reynolds"`
	Measured float64 `json:"measured" yaml:"measured"`
	Laminar  float64 `json:"laminar" yaml:"laminar"`
	Blasius  float64 `json:"blasius" yaml:"blasius"`
	Regime   string  `json:"regime" yaml:"regime"`
}

// 各分析阶段名称
const (
	StageCore           = "core"
	StageSteamGenerator = "steam_generator"
	StagePrimaryLoop    = "primary_loop"
	StageFriction       = "friction"
)

// Report 汇总一次完整计算，失败的阶段结果为 nil，错误记录在 Errors 中
type Report struct {
	ID             string                `json:"id" yaml:"id"`
	CreatedAt      time.Time             `json:"created_at" yaml:"created_at"`
	Parameters     Parameters            `json:"parameters" yaml:"parameters"`
	Core           *CoreResult           `json:"core,omitempty" yaml:"core,omitempty"`
	SteamGenerator *SteamGeneratorResult `json:"steam_generator,omitempty" yaml:"steam_generator,omitempty"`
	PrimaryLoop    *PrimaryLoopResult    `json:"primary_loop,omitempty" yaml:"primary_loop,omitempty"`
	Friction       FrictionResult        `json:"friction,omitempty" yaml:"friction,omitempty"`
	Comparison     []Comparison          `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Errors         map[string]string     `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (r *Report) Failed(stage string) bool {
	_, ok := r.Errors[stage]
	return ok
}
