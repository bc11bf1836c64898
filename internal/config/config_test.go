// internal/config/config_test.go
//
// 設定載入測試：預設值、環境變數覆寫、.env 檔與非法門檻。
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txnchain/internal/chain"
)

// clearEnv 以 t.Setenv 設為空字串，等同未設定，測試結束自動還原。
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvFraudThreshold, EnvChainOrder, EnvLogLevel, EnvBatchFile} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.FraudThreshold.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, chain.DefaultOrder, cfg.ChainOrder)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.BatchFile)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFraudThreshold, "250.75")
	t.Setenv(EnvChainOrder, " balance , logger,, fraud ")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvBatchFile, "/tmp/batch.json")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "250.75", cfg.FraudThreshold.String())
	assert.Equal(t, []string{"balance", "logger", "fraud"}, cfg.ChainOrder)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/batch.json", cfg.BatchFile)
}

func TestFromEnvBadThreshold(t *testing.T) {
	for _, raw := range []string{"abc", "-1"} {
		clearEnv(t)
		t.Setenv(EnvFraudThreshold, raw)

		_, err := FromEnv()
		assert.ErrorIs(t, err, ErrBadThreshold, raw)
	}
}

// TestDefaultOrderNotAliased 確認修改設定中的順序不會影響 chain.DefaultOrder。
func TestDefaultOrderNotAliased(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	cfg.ChainOrder[0] = "mutated"
	assert.Equal(t, chain.LoggerName, chain.DefaultOrder[0])
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv 不覆寫已存在的變數，先移除讓 .env 生效
	require.NoError(t, os.Unsetenv(EnvFraudThreshold))
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FRAUD_THRESHOLD=42\nLOG_LEVEL=warn\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "42", cfg.FraudThreshold.String())
	assert.Equal(t, "warn", cfg.LogLevel)

	// godotenv 直接寫入行程環境，需手動清除
	t.Cleanup(func() {
		_ = os.Unsetenv(EnvFraudThreshold)
		_ = os.Unsetenv(EnvLogLevel)
	})
}

func TestLoadMissingDotEnv(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
