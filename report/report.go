// Package report 把计算结果整理成文本、JSON/YAML 和绘图数据，计算本身不在这里进行。
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"reactorloop/model"
)

// Text 输出热工分析结果
func Text(w io.Writer, r *model.Report) error {
	p := &printer{w: w}
	p.printf("计算编号: %s\n\n", r.ID)

	if c := r.Core; c != nil {
		p.printf("核心热工分析结果:\n")
		p.printf("质量流量: %.2f kg/s\n", c.MassFlowRate())
		p.printf("堆芯流速: %.2f m/s\n", c.FlowVelocity())
		p.printf("雷诺数: %.2f\n", c.Reynolds())
		p.printf("普朗特数: %.2f\n", c.Prandtl())
		p.printf("努塞尔数: %.2f\n", c.Nusselt())
		p.printf("传热系数: %.2f W/(m^2·K)\n", c.HeatTransferCoefficient())
		p.printf("压降: %.2f Pa\n\n", c.PressureDrop())
	}

	if sg := r.SteamGenerator; sg != nil {
		p.printf("蒸汽发生器热工分析结果:\n")
		p.printf("传热面积: %.2f m^2\n", sg.HeatTransferArea())
		// 管数只在显示时取整
		p.printf("管数: %.0f\n", math.Round(sg.TubeCount()))
		p.printf("管内流速: %.2f m/s\n", sg.TubeVelocity())
		p.printf("管内压降: %.2f Pa\n", sg.TubePressureDrop())
		p.printf("蒸汽发生器传热系数: %.2f W/(m^2·K)\n\n", sg.OverallHeatTransferCoefficient())
	}

	if l := r.PrimaryLoop; l != nil {
		p.printf("主回路热工分析结果:\n")
		p.printf("主回路流速: %.2f m/s\n", l.FlowVelocity())
		p.printf("雷诺数: %.2f\n", l.Reynolds())
		p.printf("总压降: %.2f Pa\n", l.TotalPressureDrop())
		p.printf("管道压降: %.2f Pa\n\n", l.PipePressureDrop())
	}

	if len(r.Friction) > 0 {
		p.printf("流速(m/s)、雷诺数、摩擦系数:\n")
		for i, row := range r.Friction {
			p.printf("%d  %8.4f  %10.2f  %8.5f\n", i+1, row.Velocity(), row.Reynolds(), row.FrictionFactor())
		}
		p.printf("\n")
	}

	if len(r.Comparison) > 0 {
		p.printf("与理论关联式对比:\n")
		for _, c := range r.Comparison {
			p.printf("%d  Re=%.0f  f=%.5f  64/Re=%.5f  Blasius=%.5f  %s\n",
				c.Row+1, c.Reynolds, c.Measured, c.Laminar, c.Blasius, c.Regime)
		}
		p.printf("\n")
	}

	if len(r.Errors) > 0 {
		stages := make([]string, 0, len(r.Errors))
		for s := range r.Errors {
			stages = append(stages, s)
		}
		sort.Strings(stages)
		p.printf("失败的计算:\n")
		for _, s := range stages {
			p.printf("%s: %s\n", s, r.Errors[s])
		}
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func JSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func YAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
