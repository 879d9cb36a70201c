package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"reactorloop/calculator"
	"reactorloop/model"
	"reactorloop/moody"
)

func defaultReport(t *testing.T) *model.Report {
	t.Helper()
	r := calculator.DefaultCalculator().Run(model.DefaultParameters(), model.DefaultMeasurements())
	require.Empty(t, r.Errors)
	return r
}

func TestText(t *testing.T) {
	r := defaultReport(t)
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, r))
	out := buf.String()
	assert.Contains(t, out, "核心热工分析结果")
	assert.Contains(t, out, "蒸汽发生器热工分析结果")
	assert.Contains(t, out, "主回路热工分析结果")
	assert.Contains(t, out, "质量流量: 1.16 kg/s")
	assert.Contains(t, out, "管数: 21")
	assert.NotContains(t, out, "失败的计算")
}

func TestTextWithFailedStage(t *testing.T) {
	p := model.DefaultParameters()
	p.OutletTemperature = p.InletTemperature
	r := calculator.DefaultCalculator().Run(p, nil)

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, r))
	out := buf.String()
	assert.NotContains(t, out, "核心热工分析结果")
	assert.Contains(t, out, "失败的计算")
	assert.Contains(t, out, model.StageSteamGenerator)
}

func TestJSONAndYAML(t *testing.T) {
	r := defaultReport(t)

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, r))
	var decoded model.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.ID, decoded.ID)
	require.NotNil(t, decoded.PrimaryLoop)
	assert.Equal(t, *r.PrimaryLoop, *decoded.PrimaryLoop)

	buf.Reset()
	require.NoError(t, YAML(&buf, r))
	var generic map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &generic))
	assert.Equal(t, r.ID, generic["id"])
	assert.Len(t, generic["core"], 7)
}

func TestCharts(t *testing.T) {
	r := defaultReport(t)
	curves, err := moody.ReferenceCurves(1e3, 1e6, 50)
	require.NoError(t, err)

	data := Charts(r, curves)
	require.Len(t, data.PressureDrops, 3)
	assert.Equal(t, r.Core.PressureDrop(), data.PressureDrops[0].Value)
	assert.Equal(t, r.SteamGenerator.TubePressureDrop(), data.PressureDrops[1].Value)
	assert.Equal(t, r.PrimaryLoop.PipePressureDrop(), data.PressureDrops[2].Value)

	sum := 0.0
	for _, b := range data.PressureShares {
		sum += b.Value
	}
	assert.InDelta(t, 100, sum, 1e-9)

	require.Len(t, data.Temperatures, 4)
	assert.Equal(t, 250.0, data.Temperatures[0].Value)
	assert.Equal(t, 750.0, data.Temperatures[2].Value)

	require.NotNil(t, data.Moody)
	assert.Len(t, data.Moody.Curves, 50)
	assert.Len(t, data.Moody.Points, 6)
}
