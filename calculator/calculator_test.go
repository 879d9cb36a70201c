package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"reactorloop/model"
	"reactorloop/moody"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var approx = cmpopts.EquateApprox(1e-12, 0)

// 几组合法参数，用于检查不依赖具体数值的性质
func validParameters() []model.Parameters {
	base := model.DefaultParameters()
	water := model.Parameters{
		ThermalPower:        1e8,
		InletTemperature:    290,
		OutletTemperature:   325,
		SystemPressure:      15.5e6,
		CoreDiameter:        3.4,
		CoreHeight:          3.7,
		Density:             720,
		SpecificHeat:        5500,
		Viscosity:           9e-5,
		ThermalConductivity: 0.55,
	}
	hot := base
	hot.OutletTemperature = 950
	small := base
	small.ThermalPower = 1e3
	small.CoreDiameter = 0.5
	zero := base
	zero.ThermalPower = 0
	return []model.Parameters{base, water, hot, small, zero}
}

func TestCoreThermalAnalysisDefaults(t *testing.T) {
	p := model.DefaultParameters()
	got, err := CoreThermalAnalysis(p, DefaultCoreConstants())
	require.NoError(t, err)

	m := 3e6 / (5193 * 500.0)
	area := math.Pi * 1.2 * 1.2 * 0.4
	v := m / (0.48 * area)
	re := 0.48 * v * 0.02 / 3.95e-5
	pr := 5193 * 3.95e-5 / 0.304
	nu := 0.023 * math.Pow(re, 0.8) * math.Pow(pr, 0.3)
	want := model.CoreResult{
		m,
		v,
		re,
		pr,
		nu,
		nu * 0.304 / 0.02,
		0.02 * (4.0 / 0.02) * (0.48 * v * v / 2),
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("core result mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1.1554, got.MassFlowRate(), 1e-4)
}

func TestCoreThermalAnalysisNonNegative(t *testing.T) {
	for i, p := range validParameters() {
		r, err := CoreThermalAnalysis(p, DefaultCoreConstants())
		require.NoError(t, err, "case %d", i)
		assert.GreaterOrEqual(t, r.MassFlowRate(), 0.0)
		assert.GreaterOrEqual(t, r.FlowVelocity(), 0.0)
		assert.GreaterOrEqual(t, r.Reynolds(), 0.0)
		assert.GreaterOrEqual(t, r.Prandtl(), 0.0)
		assert.GreaterOrEqual(t, r.PressureDrop(), 0.0)
	}
}

func TestSteamGeneratorAnalysisDefaults(t *testing.T) {
	p := model.DefaultParameters()
	c := DefaultSteamGeneratorConstants()
	got, err := SteamGeneratorAnalysis(p, c)
	require.NoError(t, err)

	lmtd := 500 / math.Log((750+273.15)/(250+273.15))
	area := 3e6 / (800 * lmtd)
	vTube := 3e6 / (5193 * 500.0)
	want := model.SteamGeneratorResult{
		area,
		area / (math.Pi * 0.019 * 4.0),
		vTube,
		0.02 * (4.0 / 0.0075) * (0.48 * vTube * vTube / 2),
		800,
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("steam generator result mismatch (-want +got):\n%s", diff)
	}

	// 由面积反推的对数平均温度落在进出口绝对温度之间
	gotLMTD := p.ThermalPower / (got.OverallHeatTransferCoefficient() * got.HeatTransferArea())
	assert.InDelta(t, lmtd, gotLMTD, 1e-9)
	assert.Greater(t, gotLMTD, p.InletTemperature+model.KelvinOffset)
	assert.Less(t, gotLMTD, p.OutletTemperature+model.KelvinOffset)

	// 管数不取整
	assert.NotEqual(t, math.Round(got.TubeCount()), got.TubeCount())
}

func TestPrimaryLoopTotalPressureDrop(t *testing.T) {
	for i, p := range validParameters() {
		r, err := PrimaryLoopAnalysis(p, DefaultPrimaryLoopConstants())
		require.NoError(t, err, "case %d", i)
		assert.InDelta(t, r.PipePressureDrop()+90000, r.TotalPressureDrop(), 1e-9, "case %d", i)
	}
}

func TestPrimaryLoopAnalysisDefaults(t *testing.T) {
	got, err := PrimaryLoopAnalysis(model.DefaultParameters(), DefaultPrimaryLoopConstants())
	require.NoError(t, err)

	m := 3e6 / (5193 * 500.0)
	v := m / (0.48 * math.Pi * 0.2 * 0.2)
	dp := 0.02 * (20 / 0.4) * (0.48 * v * v / 2)
	want := model.PrimaryLoopResult{v, 0.48 * v * 0.4 / 3.95e-5, dp + 90000, dp}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("primary loop result mismatch (-want +got):\n%s", diff)
	}
}

func TestDegenerateTemperatureDifference(t *testing.T) {
	p := model.DefaultParameters()
	p.OutletTemperature = p.InletTemperature
	c := DefaultCalculator()

	_, err := c.Core(p)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = c.SteamGenerator(p)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	_, err = c.PrimaryLoop(p)
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	var de *model.DomainError
	require.True(t, errors.As(err, &de))
	assert.Contains(t, err.Error(), model.StagePrimaryLoop)
}

func TestConstantsValidate(t *testing.T) {
	assert.NoError(t, DefaultConstants().Validate())

	c := DefaultConstants()
	c.Core.Porosity = 1.5
	assert.ErrorIs(t, c.Validate(), model.ErrInvalidInput)

	c = DefaultConstants()
	c.SteamGenerator.TubeInnerDiameter = 0
	assert.ErrorIs(t, c.Validate(), model.ErrInvalidInput)

	c = DefaultConstants()
	c.PrimaryLoop.LocalLoss = -1
	assert.ErrorIs(t, c.Validate(), model.ErrInvalidInput)

	assert.Equal(t, 90000.0, DefaultPrimaryLoopConstants().FixedLosses())
}

func TestRun(t *testing.T) {
	c := DefaultCalculator()
	report := c.Run(model.DefaultParameters(), model.DefaultMeasurements())
	require.NotNil(t, report)
	assert.NotEmpty(t, report.ID)
	assert.Empty(t, report.Errors)
	require.NotNil(t, report.Core)
	require.NotNil(t, report.SteamGenerator)
	require.NotNil(t, report.PrimaryLoop)
	assert.Len(t, report.Friction, 6)
	assert.Len(t, report.Comparison, 6)

	core, err := c.Core(model.DefaultParameters())
	require.NoError(t, err)
	assert.Equal(t, core, *report.Core)

	again := c.Run(model.DefaultParameters(), nil)
	assert.NotEqual(t, report.ID, again.ID)
	assert.Nil(t, again.Friction)
}

func TestRunIsolatesFailedStage(t *testing.T) {
	constants := DefaultConstants()
	constants.SteamGenerator.TubeLength = 0
	c := NewCalculator(constants, moody.DefaultAnalyzer())

	report := c.Run(model.DefaultParameters(), model.DefaultMeasurements())
	assert.True(t, report.Failed(model.StageSteamGenerator))
	assert.Nil(t, report.SteamGenerator)
	assert.NotNil(t, report.Core)
	assert.NotNil(t, report.PrimaryLoop)
	assert.Len(t, report.Friction, 6)

	// 参数非法时回路三个阶段都失败，摩擦系数分析不受影响
	p := model.DefaultParameters()
	p.Density = 0
	report = DefaultCalculator().Run(p, model.DefaultMeasurements())
	assert.Len(t, report.Errors, 3)
	assert.Nil(t, report.Core)
	assert.Nil(t, report.PrimaryLoop)
	assert.False(t, report.Failed(model.StageFriction))
	assert.Len(t, report.Friction, 6)

	report = DefaultCalculator().Run(model.DefaultParameters(), []model.MeasurementRow{})
	assert.True(t, report.Failed(model.StageFriction))
	assert.Contains(t, report.Errors[model.StageFriction], model.ErrTableShape.Error())
}
