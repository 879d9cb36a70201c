// Package correlation 实现热工水力计算中用到的无量纲数和经验关联式。
// 所有函数都是纯函数，输入不满足条件时返回 *model.DomainError，不返回 NaN 或 Inf。
package correlation

import (
	"math"

	"reactorloop/model"
)

// Dittus-Boelter 关联式系数
const (
	dittusBoelterC  = 0.023
	dittusBoelterRe = 0.8
	dittusBoelterPr = 0.3
)

// 光滑管摩擦系数关联式系数
const (
	laminarC = 64.0
	blasiusC = 0.3164
	blasiusN = 0.25
)

func check(fn string, names []string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &model.DomainError{Func: fn, Quantity: names[i], Value: v, Err: model.ErrInvalidInput}
		}
	}
	return nil
}

func positive(fn, name string, v float64, kind error) error {
	if v <= 0 {
		return &model.DomainError{Func: fn, Quantity: name, Value: v, Err: kind}
	}
	return nil
}

// Reynolds 雷诺数 Re = ρvD/μ
func Reynolds(density, velocity, length, viscosity float64) (float64, error) {
	const fn = "reynolds"
	if err := check(fn, []string{"density", "velocity", "length", "viscosity"},
		density, velocity, length, viscosity); err != nil {
		return 0, err
	}
	if err := positive(fn, "viscosity", viscosity, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	return density * velocity * length / viscosity, nil
}

// Prandtl 普朗特数 Pr = cp·μ/k
func Prandtl(specificHeat, viscosity, conductivity float64) (float64, error) {
	const fn = "prandtl"
	if err := check(fn, []string{"specific heat", "viscosity", "thermal conductivity"},
		specificHeat, viscosity, conductivity); err != nil {
		return 0, err
	}
	if err := positive(fn, "specific heat", specificHeat, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	if err := positive(fn, "viscosity", viscosity, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	if err := positive(fn, "thermal conductivity", conductivity, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	return specificHeat * viscosity / conductivity, nil
}

// Nusselt 努塞尔数，Dittus-Boelter 形式 Nu = 0.023·Re^0.8·Pr^0.3。
// 关联式只适用于管内湍流，这里不检查 Re 是否处于湍流区。
func Nusselt(re, pr float64) (float64, error) {
	const fn = "nusselt"
	if err := check(fn, []string{"Re", "Pr"}, re, pr); err != nil {
		return 0, err
	}
	if re < 0 {
		return 0, &model.DomainError{Func: fn, Quantity: "Re", Value: re, Err: model.ErrPrecondition}
	}
	if pr < 0 {
		return 0, &model.DomainError{Func: fn, Quantity: "Pr", Value: pr, Err: model.ErrPrecondition}
	}
	return dittusBoelterC * math.Pow(re, dittusBoelterRe) * math.Pow(pr, dittusBoelterPr), nil
}

// DarcyFrictionFactor 由实测压降反算达西摩擦系数 f = 2·Δp·D/(L·ρ·v²)
func DarcyFrictionFactor(pressureDrop, diameter, length, density, velocity float64) (float64, error) {
	const fn = "darcy friction factor"
	if err := check(fn, []string{"pressure drop", "diameter", "length", "density", "velocity"},
		pressureDrop, diameter, length, density, velocity); err != nil {
		return 0, err
	}
	if err := positive(fn, "length", length, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	if err := positive(fn, "density", density, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	if velocity == 0 {
		return 0, &model.DomainError{Func: fn, Quantity: "velocity", Value: velocity, Err: model.ErrPrecondition}
	}
	return 2 * pressureDrop * diameter / (length * density * velocity * velocity), nil
}

// DarcyPressureDrop 达西-韦斯巴赫压降 Δp = f·(L/D)·(ρv²/2)
func DarcyPressureDrop(frictionFactor, length, diameter, density, velocity float64) (float64, error) {
	const fn = "darcy pressure drop"
	if err := check(fn, []string{"friction factor", "length", "diameter", "density", "velocity"},
		frictionFactor, length, diameter, density, velocity); err != nil {
		return 0, err
	}
	if err := positive(fn, "diameter", diameter, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	if err := positive(fn, "density", density, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	return frictionFactor * (length / diameter) * (density * velocity * velocity / 2), nil
}

// LMTD 按 (T_out - T_in)/ln(T_out_K/T_in_K) 计算，
// 结果是进出口绝对温度的对数平均值，介于 T_in_K 和 T_out_K 之间
func LMTD(hotOut, coldIn float64) (float64, error) {
	const fn = "lmtd"
	if err := check(fn, []string{"T_out", "T_in"}, hotOut, coldIn); err != nil {
		return 0, err
	}
	tOut := hotOut + model.KelvinOffset
	tIn := coldIn + model.KelvinOffset
	if err := positive(fn, "absolute T_out", tOut, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	if err := positive(fn, "absolute T_in", tIn, model.ErrInvalidInput); err != nil {
		return 0, err
	}
	if hotOut == coldIn {
		return 0, &model.DomainError{Func: fn, Quantity: "T_out - T_in", Value: 0, Err: model.ErrInvalidInput}
	}
	return (hotOut - coldIn) / math.Log(tOut/tIn), nil
}

// Laminar 层流理论解 f = 64/Re
func Laminar(re float64) (float64, error) {
	const fn = "laminar friction"
	if err := check(fn, []string{"Re"}, re); err != nil {
		return 0, err
	}
	if err := positive(fn, "Re", re, model.ErrPrecondition); err != nil {
		return 0, err
	}
	return laminarC / re, nil
}

// Blasius 光滑管湍流区 f = 0.3164/Re^0.25
func Blasius(re float64) (float64, error) {
	const fn = "blasius friction"
	if err := check(fn, []string{"Re"}, re); err != nil {
		return 0, err
	}
	if err := positive(fn, "Re", re, model.ErrPrecondition); err != nil {
		return 0, err
	}
	return blasiusC / math.Pow(re, blasiusN), nil
}
