package moody

import (
	"fmt"
	"math"
	"sort"

	"reactorloop/model"
)

// 查表方式
type LookupMode int

const (
	Nearest LookupMode = iota // 取最近的参考温度点
	Linear                    // 相邻参考点之间线性插值，表外取端点值
)

func (m LookupMode) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	}
	return fmt.Sprintf("LookupMode(%d)", int(m))
}

func ParseLookupMode(s string) (LookupMode, error) {
	switch s {
	case "nearest", "":
		return Nearest, nil
	case "linear":
		return Linear, nil
	}
	return Nearest, fmt.Errorf("unknown viscosity lookup mode %q", s)
}

// 参考点：温度 ℃，动力粘度 Pa·s
type ViscosityPoint struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Viscosity   float64 `json:"viscosity" yaml:"viscosity"`
}

// 水的动力粘度表
type ViscosityTable struct {
	points []ViscosityPoint
	mode   LookupMode
}

// 实验段水温 34℃ 和 35℃ 的参考值
func WaterViscosityPoints() []ViscosityPoint {
	return []ViscosityPoint{
		{Temperature: 34, Viscosity: 0.7411e-3},
		{Temperature: 35, Viscosity: 0.7263e-3},
	}
}

func NewViscosityTable(points []ViscosityPoint, mode LookupMode) (*ViscosityTable, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: viscosity table is empty", model.ErrTableShape)
	}
	sorted := make([]ViscosityPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Temperature < sorted[j].Temperature
	})
	for i, p := range sorted {
		if math.IsNaN(p.Temperature) || math.IsInf(p.Temperature, 0) {
			return nil, &model.DomainError{Func: "viscosity table", Quantity: "temperature", Value: p.Temperature, Err: model.ErrInvalidInput}
		}
		if !(p.Viscosity > 0) || math.IsInf(p.Viscosity, 0) {
			return nil, &model.DomainError{Func: "viscosity table", Quantity: "viscosity", Value: p.Viscosity, Err: model.ErrInvalidInput}
		}
		if i > 0 && sorted[i-1].Temperature == p.Temperature {
			return nil, fmt.Errorf("%w: duplicate viscosity point at %g℃", model.ErrTableShape, p.Temperature)
		}
	}
	return &ViscosityTable{points: sorted, mode: mode}, nil
}

func DefaultViscosityTable() *ViscosityTable {
	t, _ := NewViscosityTable(WaterViscosityPoints(), Nearest)
	return t
}

func (t *ViscosityTable) Mode() LookupMode {
	if t == nil {
		return Nearest
	}
	return t.mode
}

func (t *ViscosityTable) Points() []ViscosityPoint {
	if t == nil {
		return nil
	}
	points := make([]ViscosityPoint, len(t.points))
	copy(points, t.points)
	return points
}

// Lookup 返回温度 temp 下的动力粘度
func (t *ViscosityTable) Lookup(temp float64) (float64, error) {
	if math.IsNaN(temp) || math.IsInf(temp, 0) {
		return 0, &model.DomainError{Func: "viscosity lookup", Quantity: "temperature", Value: temp, Err: model.ErrInvalidInput}
	}
	if t == nil || len(t.points) == 0 {
		return 0, fmt.Errorf("%w: viscosity table is empty", model.ErrTableShape)
	}
	n := len(t.points)
	if temp <= t.points[0].Temperature {
		return t.points[0].Viscosity, nil
	}
	if temp >= t.points[n-1].Temperature {
		return t.points[n-1].Viscosity, nil
	}
	// 第一个温度大于 temp 的点
	right := sort.Search(n, func(i int) bool {
		return t.points[i].Temperature > temp
	})
	lo, hi := t.points[right-1], t.points[right]
	if t.mode == Linear {
		return lo.Viscosity + (hi.Viscosity-lo.Viscosity)*(temp-lo.Temperature)/(hi.Temperature-lo.Temperature), nil
	}
	// 正好在中点时取低温点
	if temp-lo.Temperature <= hi.Temperature-temp {
		return lo.Viscosity, nil
	}
	return hi.Viscosity, nil
}
