package moody

import (
	"fmt"
	"math"

	"reactorloop/correlation"
	"reactorloop/model"
)

// 流态分界雷诺数
const (
	LaminarLimit   = 2300.0
	TurbulentLimit = 4000.0
)

const (
	RegimeLaminar      = "laminar"
	RegimeTransitional = "transitional"
	RegimeTurbulent    = "turbulent"
)

func Regime(re float64) string {
	switch {
	case re < LaminarLimit:
		return RegimeLaminar
	case re < TurbulentLimit:
		return RegimeTransitional
	default:
		return RegimeTurbulent
	}
}

// 理论曲线上的一点
type CurvePoint struct {
	Reynolds float64 `json:"reynolds" yaml:"reynolds"`
	Laminar  float64 `json:"laminar" yaml:"laminar"`
	Blasius  float64 `json:"blasius" yaml:"blasius"`
}

// CheckCurveRange 检查理论曲线的取样范围
func CheckCurveRange(reMin, reMax float64, n int) error {
	if n < 2 {
		return fmt.Errorf("%w: need at least 2 curve points, got %d", model.ErrTableShape, n)
	}
	if !(reMin > 0) || math.IsInf(reMin, 0) {
		return &model.DomainError{Func: "reference curves", Quantity: "Re min", Value: reMin, Err: model.ErrPrecondition}
	}
	if !(reMax > reMin) || math.IsInf(reMax, 0) {
		return &model.DomainError{Func: "reference curves", Quantity: "Re max", Value: reMax, Err: model.ErrPrecondition}
	}
	return nil
}

// ReferenceCurves 在 [reMin, reMax] 上按对数等间距取 n 个点，
// 给出层流和 Blasius 两条理论曲线，供绘图层使用
func ReferenceCurves(reMin, reMax float64, n int) ([]CurvePoint, error) {
	if err := CheckCurveRange(reMin, reMax, n); err != nil {
		return nil, err
	}
	lo, hi := math.Log10(reMin), math.Log10(reMax)
	step := (hi - lo) / float64(n-1)
	points := make([]CurvePoint, n)
	for i := range points {
		re := math.Pow(10, lo+step*float64(i))
		if i == n-1 {
			re = reMax
		}
		fl, err := correlation.Laminar(re)
		if err != nil {
			return nil, err
		}
		fb, err := correlation.Blasius(re)
		if err != nil {
			return nil, err
		}
		points[i] = CurvePoint{Reynolds: re, Laminar: fl, Blasius: fb}
	}
	return points, nil
}

// Compare 将每个实验点的摩擦系数与理论值对比
func Compare(result model.FrictionResult) ([]model.Comparison, error) {
	out := make([]model.Comparison, len(result))
	for i, r := range result {
		fl, err := correlation.Laminar(r.Reynolds())
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		fb, err := correlation.Blasius(r.Reynolds())
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = model.Comparison{
			Row:      i,
			Reynolds: r.Reynolds(),
			Measured: r.FrictionFactor(),
			Laminar:  fl,
			Blasius:  fb,
			Regime:   Regime(r.Reynolds()),
		}
	}
	return out, nil
}
