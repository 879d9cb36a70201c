package config

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// SetupLogger 设置 logrus 全局日志级别和格式
func SetupLogger(cfg LogConfig, out io.Writer) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}
	if out != nil {
		log.SetOutput(out)
	}
	return nil
}
