// internal/config/config.go

// Package config 讀取啟動設定。
// 先以 godotenv 載入 .env（不存在時沿用系統環境變數），再逐項解析並給予預設值。
// 設定只在啟動時讀一次，鏈的順序與門檻在執行期間不會變更。
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"txnchain/internal/chain"
)

const (
	EnvFraudThreshold = "FRAUD_THRESHOLD"
	EnvChainOrder     = "CHAIN_ORDER"
	EnvLogLevel       = "LOG_LEVEL"
	EnvBatchFile      = "BATCH_FILE"
)

// ErrBadThreshold 代表 FRAUD_THRESHOLD 無法解析或為負數。
var ErrBadThreshold = errors.New("invalid fraud threshold")

// Config 為程式的完整啟動設定。
type Config struct {
	FraudThreshold decimal.Decimal
	ChainOrder     []string
	LogLevel       string
	// BatchFile 為空時使用內建示範交易。
	BatchFile string
}

// Load 載入 .env 後從環境變數建立 Config。
func Load(files ...string) (Config, error) {
	// .env 不存在不是錯誤
	_ = godotenv.Load(files...)
	return FromEnv()
}

// FromEnv 僅從目前的環境變數建立 Config。
func FromEnv() (Config, error) {
	cfg := Config{
		FraudThreshold: chain.DefaultFraudThreshold,
		ChainOrder:     append([]string(nil), chain.DefaultOrder...),
		LogLevel:       getenvOrDefault(EnvLogLevel, "info"),
		BatchFile:      getenvOrDefault(EnvBatchFile, ""),
	}

	if raw := getenvOrDefault(EnvFraudThreshold, ""); raw != "" {
		th, err := decimal.NewFromString(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvFraudThreshold, raw, ErrBadThreshold)
		}
		if th.IsNegative() {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvFraudThreshold, raw, ErrBadThreshold)
		}
		cfg.FraudThreshold = th
	}

	if raw := getenvOrDefault(EnvChainOrder, ""); raw != "" {
		cfg.ChainOrder = splitList(raw)
	}

	return cfg, nil
}

func getenvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
