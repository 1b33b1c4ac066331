package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/jomatheusdev/bd-poo-biblioteca/internal/server"
	"github.com/jomatheusdev/bd-poo-biblioteca/pkg/logger"
	"github.com/jomatheusdev/bd-poo-biblioteca/pkg/postgres"
)

type Emprestimo struct {
	DiasPadrao int `envconfig:"DIAS_EMPRESTIMO" default:"14"`
}

type Config struct {
	Server     server.Config
	Database   postgres.Config
	Emprestimo Emprestimo
	Log        logger.Log
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
