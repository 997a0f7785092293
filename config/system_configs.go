package config

import (
	"fmt"
	"os"
	"sync/atomic"

	"stockviewer/model"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type SystemConfigs struct {
	Env *model.EnvConfig
	App *ConfigManager
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	apiKey := os.Getenv("ALPHAVANTAGE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("environment variable 'ALPHAVANTAGE_API_KEY' is empty or not set")
	}

	envCfg := &model.EnvConfig{
		Port:               os.Getenv("PORT"),
		Environment:        os.Getenv("ENVIRONMENT"),
		AlphaVantageAPIKey: apiKey,
	}

	appCfg, err := loadAppConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}

	return &SystemConfigs{
		Env: envCfg,
		App: NewConfigManager(appCfg),
	}, nil
}

func loadAppConfig(path string) (*model.AppConfig, error) {
	cfg := &model.AppConfig{
		CacheTTLMinutes:     15,
		RetryBackoffSeconds: 12,
		DefaultBars:         180,
		MaxBars:             250,
		RateLimiter:         true,
		FrontendUrls:        []string{"http://localhost:3000"},
	}

	if path == "" {
		path = "config.yaml"
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.AppConfig) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.AppConfig {
	return cm.value.Load().(*model.AppConfig)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.AppConfig) {
	cm.value.Store(newCfg)
}
