package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"reactorloop/config"
	"reactorloop/model"
	"reactorloop/report"
	"reactorloop/server"
)

var (
	configPath string
	verbose    bool
	format     string
	addr       string

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reactorloop",
	Short: "高温气冷堆一回路热工水力计算",
	Long: `reactorloop 计算堆芯、蒸汽发生器和主回路的热工水力参数，
并根据管道实验数据计算摩擦系数，与摩迪图理论曲线对比。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		return config.SetupLogger(cfg.Log, nil)
	},
}

// runCmd 计算默认数据集并输出结果
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "计算并输出热工分析结果",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cfg, format, cmd.OutOrStdout())
	},
}

// serveCmd 启动 websocket 服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 websocket 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr != "" {
			cfg.Server.Addr = addr
		}
		s, err := newServer(cfg)
		if err != nil {
			return err
		}
		return s.Serve()
	},
}

func runReport(cfg *config.Config, format string, w io.Writer) error {
	c, err := cfg.NewCalculator()
	if err != nil {
		return err
	}
	r := c.Run(cfg.Parameters, model.DefaultMeasurements())

	switch strings.ToLower(format) {
	case "text", "":
		err = report.Text(w, r)
	case "json":
		err = report.JSON(w, r)
	case "yaml":
		err = report.YAML(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return err
	}

	if len(r.Errors) > 0 {
		stages := make([]string, 0, len(r.Errors))
		for stage := range r.Errors {
			stages = append(stages, stage)
		}
		sort.Strings(stages)
		return fmt.Errorf("计算失败: %s", strings.Join(stages, ", "))
	}
	return nil
}

func newServer(cfg *config.Config) (*server.Server, error) {
	c, err := cfg.NewCalculator()
	if err != nil {
		return nil, err
	}
	upgrader := websocket.Upgrader{
		ReadBufferSize:  cfg.Server.ReadBufferSize,
		WriteBufferSize: cfg.Server.WriteBufferSize,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	curves := server.CurveRange{
		ReMin:  cfg.Curves.ReMin,
		ReMax:  cfg.Curves.ReMax,
		Points: cfg.Curves.Points,
	}
	return server.NewServer(cfg.Server.Addr, upgrader, c, cfg.Parameters, curves), nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "配置文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")

	runCmd.Flags().StringVarP(&format, "format", "f", "text", "输出格式: text / json / yaml")
	serveCmd.Flags().StringVar(&addr, "addr", "", "监听地址，覆盖配置文件中的 [server] addr")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("退出")
		os.Exit(1)
	}
}
