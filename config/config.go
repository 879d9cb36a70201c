package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"reactorloop/calculator"
	"reactorloop/model"
	"reactorloop/moody"
)

const DefaultPath = "conf/config.ini"

type LogConfig struct {
	Level  string
	Format string // text / json
}

type ServerConfig struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
}

// 摩迪图理论曲线取样范围
type CurveConfig struct {
	ReMin  float64
	ReMax  float64
	Points int
}

type Config struct {
	Log        LogConfig
	Server     ServerConfig
	Constants  calculator.Constants
	Friction   moody.Constants
	Viscosity  moody.LookupMode
	Curves     CurveConfig
	Parameters model.Parameters
}

// Load 读取 ini 配置文件，path 为空时全部使用默认值
func Load(path string) (*Config, error) {
	file := ini.Empty()
	if path != "" {
		var err error
		file, err = ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("配置文件读取错误，请检查文件路径: %w", err)
		}
	}
	return loadCfg(file)
}

// LoadOrDefault 文件不存在时使用默认配置
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.WithField("path", path).Warn("配置文件不存在，使用默认配置")
		return Load("")
	}
	return Load(path)
}

// ErrMalformed 配置项存在但无法解析为数值
var ErrMalformed = errors.New("malformed config value")

// 物理量按严格模式读取：键不存在时取默认值，格式错误时记录第一个错误
type strictReader struct {
	file *ini.File
	err  error
}

func (r *strictReader) key(section, name string) (*ini.Key, bool) {
	if r.err != nil {
		return nil, false
	}
	sec := r.file.Section(section)
	if !sec.HasKey(name) {
		return nil, false
	}
	return sec.Key(name), true
}

func (r *strictReader) float(section, name string, def float64) float64 {
	k, ok := r.key(section, name)
	if !ok {
		return def
	}
	v, err := k.Float64()
	if err != nil {
		r.err = fmt.Errorf("%w: [%s] %s = %q", ErrMalformed, section, name, k.String())
		return def
	}
	return v
}

func (r *strictReader) int(section, name string, def int) int {
	k, ok := r.key(section, name)
	if !ok {
		return def
	}
	v, err := k.Int()
	if err != nil {
		r.err = fmt.Errorf("%w: [%s] %s = %q", ErrMalformed, section, name, k.String())
		return def
	}
	return v
}

func loadCfg(file *ini.File) (*Config, error) {
	sec := file.Section("log")
	logCfg := LogConfig{
		Level:  sec.Key("level").MustString("info"),
		Format: sec.Key("format").MustString("text"),
	}

	sec = file.Section("server")
	serverCfg := ServerConfig{
		Addr:            sec.Key("addr").MustString(":9000"),
		ReadBufferSize:  sec.Key("read_buffer_size").MustInt(1024),
		WriteBufferSize: sec.Key("write_buffer_size").MustInt(1024),
	}

	r := &strictReader{file: file}

	def := calculator.DefaultConstants()
	core := calculator.CoreConstants{
		Porosity:          r.float("core", "porosity", def.Core.Porosity),
		HydraulicDiameter: r.float("core", "hydraulic_diameter", def.Core.HydraulicDiameter),
		FrictionFactor:    r.float("core", "friction_factor", def.Core.FrictionFactor),
	}
	sg := calculator.SteamGeneratorConstants{
		OverallHTC:        r.float("steam_generator", "overall_htc", def.SteamGenerator.OverallHTC),
		TubeOuterDiameter: r.float("steam_generator", "tube_outer_diameter", def.SteamGenerator.TubeOuterDiameter),
		TubeInnerDiameter: r.float("steam_generator", "tube_inner_diameter", def.SteamGenerator.TubeInnerDiameter),
		TubeLength:        r.float("steam_generator", "tube_length", def.SteamGenerator.TubeLength),
		FrictionFactor:    r.float("steam_generator", "friction_factor", def.SteamGenerator.FrictionFactor),
	}
	loop := calculator.PrimaryLoopConstants{
		PipeInnerDiameter: r.float("primary_loop", "pipe_inner_diameter", def.PrimaryLoop.PipeInnerDiameter),
		PipeLength:        r.float("primary_loop", "pipe_length", def.PrimaryLoop.PipeLength),
		FrictionFactor:    r.float("primary_loop", "friction_factor", def.PrimaryLoop.FrictionFactor),
		ElevationLoss:     r.float("primary_loop", "elevation_loss", def.PrimaryLoop.ElevationLoss),
		AccelerationLoss:  r.float("primary_loop", "acceleration_loss", def.PrimaryLoop.AccelerationLoss),
		LocalLoss:         r.float("primary_loop", "local_loss", def.PrimaryLoop.LocalLoss),
	}

	defFriction := moody.DefaultConstants()
	friction := moody.Constants{
		PipeDiameter: r.float("friction", "pipe_diameter", defFriction.PipeDiameter),
		PipeLength:   r.float("friction", "pipe_length", defFriction.PipeLength),
		Density:      r.float("friction", "density", defFriction.Density),
	}

	curves := CurveConfig{
		ReMin:  r.float("moody", "re_min", 1e3),
		ReMax:  r.float("moody", "re_max", 1e6),
		Points: r.int("moody", "points", 500),
	}

	defParams := model.DefaultParameters()
	params := model.Parameters{
		ThermalPower:        r.float("parameters", "thermal_power", defParams.ThermalPower),
		InletTemperature:    r.float("parameters", "inlet_temperature", defParams.InletTemperature),
		OutletTemperature:   r.float("parameters", "outlet_temperature", defParams.OutletTemperature),
		SystemPressure:      r.float("parameters", "system_pressure", defParams.SystemPressure),
		CoreDiameter:        r.float("parameters", "core_diameter", defParams.CoreDiameter),
		CoreHeight:          r.float("parameters", "core_height", defParams.CoreHeight),
		Density:             r.float("parameters", "density", defParams.Density),
		SpecificHeat:        r.float("parameters", "specific_heat", defParams.SpecificHeat),
		Viscosity:           r.float("parameters", "viscosity", defParams.Viscosity),
		ThermalConductivity: r.float("parameters", "thermal_conductivity", defParams.ThermalConductivity),
	}
	if r.err != nil {
		return nil, r.err
	}

	constants := calculator.Constants{Core: core, SteamGenerator: sg, PrimaryLoop: loop}
	if err := constants.Validate(); err != nil {
		return nil, err
	}
	if err := friction.Validate(); err != nil {
		return nil, err
	}
	mode, err := moody.ParseLookupMode(file.Section("friction").Key("viscosity_lookup").MustString("nearest"))
	if err != nil {
		return nil, err
	}
	if err := moody.CheckCurveRange(curves.ReMin, curves.ReMax, curves.Points); err != nil {
		return nil, fmt.Errorf("[moody]: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		Log:        logCfg,
		Server:     serverCfg,
		Constants:  constants,
		Friction:   friction,
		Viscosity:  mode,
		Curves:     curves,
		Parameters: params,
	}, nil
}

// NewCalculator 根据配置创建计算器
func (c *Config) NewCalculator() (*calculator.Calculator, error) {
	table, err := moody.NewViscosityTable(moody.WaterViscosityPoints(), c.Viscosity)
	if err != nil {
		return nil, err
	}
	return calculator.NewCalculator(c.Constants, moody.NewAnalyzer(c.Friction, table)), nil
}
