package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reactorloop/config"
	"reactorloop/model"
)

func TestRunReport(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, runReport(cfg, "text", &buf))
	assert.Contains(t, buf.String(), "核心热工分析结果")

	buf.Reset()
	require.NoError(t, runReport(cfg, "JSON", &buf))
	var r model.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &r))
	assert.NotEmpty(t, r.ID)
	assert.Len(t, r.Friction, 6)

	buf.Reset()
	require.NoError(t, runReport(cfg, "yaml", &buf))
	assert.Contains(t, buf.String(), "primary_loop:")

	assert.Error(t, runReport(cfg, "xml", &buf))
}

func TestRunReportFailedStage(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Constants.SteamGenerator.TubeLength = 0

	var buf bytes.Buffer
	err = runReport(cfg, "text", &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), model.StageSteamGenerator)
	assert.Contains(t, buf.String(), "主回路热工分析结果")
}

func TestNewServer(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	s, err := newServer(cfg)
	require.NoError(t, err)
	assert.NotNil(t, s.Handler())
}
