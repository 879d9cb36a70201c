package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameterTable(t *testing.T) {
	table := DefaultParameterTable()
	require.Len(t, table, ParameterCount)
	assert.Equal(t, "反应堆热功率", table[IdxThermalPower].Name)
	assert.Equal(t, 3e6, table[IdxThermalPower].Value)
	assert.Equal(t, 250.0, table[IdxInletTemperature].Value)
	assert.Equal(t, 750.0, table[IdxOutletTemperature].Value)
	assert.Equal(t, 0.304, table[IdxThermalConductivity].Value)
	assert.Equal(t, "W/(m·K)", table[IdxThermalConductivity].Unit)

	p, err := ParametersFromTable(table)
	require.NoError(t, err)
	assert.Equal(t, DefaultParameters(), p)
	assert.NoError(t, p.Validate())
}

func TestParametersFromTableShape(t *testing.T) {
	table := DefaultParameterTable()

	_, err := ParametersFromTable(table[:9])
	assert.ErrorIs(t, err, ErrTableShape)

	_, err = ParametersFromTable(append(table, ParameterEntry{Name: "extra", Value: 1, Unit: "m"}))
	assert.ErrorIs(t, err, ErrTableShape)

	// 交换密度和比热容的位置
	swapped := DefaultParameterTable()
	swapped[IdxDensity], swapped[IdxSpecificHeat] = swapped[IdxSpecificHeat], swapped[IdxDensity]
	_, err = ParametersFromTable(swapped)
	assert.ErrorIs(t, err, ErrTableShape)
}

func TestParametersValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(p *Parameters)
	}{
		{"zero density", func(p *Parameters) { p.Density = 0 }},
		{"negative viscosity", func(p *Parameters) { p.Viscosity = -1e-5 }},
		{"zero specific heat", func(p *Parameters) { p.SpecificHeat = 0 }},
		{"zero conductivity", func(p *Parameters) { p.ThermalConductivity = 0 }},
		{"zero core diameter", func(p *Parameters) { p.CoreDiameter = 0 }},
		{"negative power", func(p *Parameters) { p.ThermalPower = -1 }},
		{"equal temperatures", func(p *Parameters) { p.OutletTemperature = p.InletTemperature }},
		{"inverted temperatures", func(p *Parameters) { p.OutletTemperature = 100 }},
		{"below absolute zero", func(p *Parameters) { p.InletTemperature = -300 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := DefaultParameters()
			c.modify(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestCheckMeasurements(t *testing.T) {
	assert.NoError(t, CheckMeasurements(DefaultMeasurements()))
	assert.ErrorIs(t, CheckMeasurements(nil), ErrTableShape)
}
