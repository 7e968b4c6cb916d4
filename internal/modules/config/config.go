package config

import (
	"os"
	"strconv"
	"time"

	"breakout_bot/pkg/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	databaseDSN       = "DATABASE_DSN"
)

// Config ...
type Config struct {
	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	DB    string `yaml:"db_dsn"`
	Upbit struct {
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		RestURL   string `yaml:"rest_url"`
		WsURL     string `yaml:"ws_url"`
	} `yaml:"upbit"`
	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`
	HealthAddr string `yaml:"health_addr"`

	// DryRun — бумажный гейтвей: полный жизненный цикл без реальных ордеров.
	DryRun bool `yaml:"dry_run"`

	// Вселенная символов и обновление референс-свечей
	MarketQuote     string        // MARKET_QUOTE: KRW | BTC | ALL
	IncludeCaution  bool          // INCLUDE_CAUTION: брать ли CAUTION-символы
	RefreshInterval time.Duration // CANDLE_REFRESH_INTERVAL (1h)
	StaggerDelay    time.Duration // CANDLE_STAGGER_DELAY (150ms) — троттлинг REST
	SubscribeBatch  int           // WS_SUBSCRIBE_BATCH: максимум кодов в subscribe-фрейме

	// Торговля
	Strategy    string        // STRATEGY (volatility_breakout)
	NotionalKRW float64       // NOTIONAL_KRW: фиксированная сумма рыночной покупки
	HoldFor     time.Duration // HOLD_FOR: удержание до продажи (300s)
	Cooldown    time.Duration // COOLDOWN: запрет на повторный вход после продажи (2h)
	LaneBuffer  int           // LANE_BUFFER: буфер тиков на символ
}

func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	config := Config{
		MarketQuote:     getenvDefault("MARKET_QUOTE", "KRW"),
		IncludeCaution:  boolFromEnv("INCLUDE_CAUTION", false),
		RefreshInterval: durationFromEnv("CANDLE_REFRESH_INTERVAL", "1h"),
		StaggerDelay:    durationFromEnv("CANDLE_STAGGER_DELAY", "150ms"),
		SubscribeBatch:  intFromEnv("WS_SUBSCRIBE_BATCH", 15),

		Strategy:    getenvDefault("STRATEGY", "volatility_breakout"),
		NotionalKRW: floatFromEnv("NOTIONAL_KRW", 10000),
		HoldFor:     durationFromEnv("HOLD_FOR", "300s"),
		Cooldown:    durationFromEnv("COOLDOWN", "2h"),
		LaneBuffer:  intFromEnv("LANE_BUFFER", 16),

		DryRun:     boolFromEnv("DRY_RUN", false),
		HealthAddr: getenvDefault("HEALTH_ADDR", ":8080"),
	}
	config.Upbit.RestURL = "https://api.upbit.com"
	config.Upbit.WsURL = "wss://api.upbit.com/websocket/v1"

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		// без файла живём на дефолтах и ENV
		logger.Info("config file not found, using env/defaults: %v", err)
	} else {
		defer func() {
			_ = file.Close()
		}()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(&config); err != nil {
			return nil, err
		}
	}

	if token := os.Getenv(tokenTelegramENV); token != "" {
		config.Telegram.Token = token
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.Telegram.ChatID = id
		}
	}
	if dsn := os.Getenv(databaseDSN); dsn != "" {
		config.DB = dsn
	}
	if v := os.Getenv("UPBIT_OPEN_API_ACCESS_KEY"); v != "" {
		config.Upbit.AccessKey = v
	}
	if v := os.Getenv("UPBIT_OPEN_API_SECRET_KEY"); v != "" {
		config.Upbit.SecretKey = v
	}
	if v := os.Getenv("UPBIT_OPEN_API_SERVER_URL"); v != "" {
		config.Upbit.RestURL = "https://" + v
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func boolFromEnv(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if v == "1" || v == "true" || v == "TRUE" {
			return true
		}
		if v == "0" || v == "false" || v == "FALSE" {
			return false
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
