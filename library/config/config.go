package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/lendkeep/library-service/pkg/kafka"
	"github.com/lendkeep/library-service/pkg/logger"
	"github.com/lendkeep/library-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

type PaymentHTTPServer struct {
	Host string `envconfig:"PAYMENT_HTTP_HOST"`
	Port string `envconfig:"PAYMENT_HTTP_PORT"`
}

type Config struct {
	Server   HTTPServer        `yaml:"server"`
	Database postgres.DB       `yaml:"db"`
	Payment  PaymentHTTPServer `yaml:"payment"`
	Kafka    kafka.Config      `yaml:"kafka"`
	Log      logger.Log        `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
