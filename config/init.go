package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读 config.yaml，再用环境变量覆盖
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		// 默认值
		v.SetDefault("Host", "0.0.0.0")
		v.SetDefault("Port", "8080")
		v.SetDefault("Prefix", "api")
		v.SetDefault("Mode", string(ModeDebug))
		v.SetDefault("JWT.AccessExpire", 86400)
		v.SetDefault("Log.Level", "info")
		v.SetDefault("Sentry.sample_rate", 1.0)
		v.SetDefault("Webhook.timeout_ms", 5000)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalf("读取配置文件失败: %v", err)
			}
			// 没有配置文件时允许纯环境变量启动
		}

		cfg := &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("解析配置文件失败: %v", err)
		}
		if err := envconfig.Process("cps", cfg); err != nil {
			log.Fatalf("解析环境变量失败: %v", err)
		}

		cfg.Mode = Mode(strings.ToLower(string(cfg.Mode)))
		if cfg.Mode != ModeRelease {
			cfg.Mode = ModeDebug
		}
		instance = cfg
	})
}

// Get 获取全局配置，必须先调用 Init
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
