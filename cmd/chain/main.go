// cmd/chain/main.go

// 本程式示範以責任鏈檢核交易：logger → fraud_detection → balance_check。
// 此檔案負責讀取設定、建立 logger 與責任鏈，
// 再將交易（內建示範資料或 BATCH_FILE 批次檔）逐筆送入鏈首並輸出結果。

package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"txnchain/internal/chain"
	"txnchain/internal/config"
	"txnchain/internal/dispatch"
	"txnchain/internal/logging"
	"txnchain/internal/storage"
	"txnchain/internal/txn"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// 依設定的順序與門檻建立責任鏈；啟動後不再變更
	head, err := chain.Build(cfg.ChainOrder, cfg.FraudThreshold)
	if err != nil {
		logger.Fatal("build chain", zap.Error(err))
	}
	logger.Info("chain ready",
		zap.String("order", strings.Join(cfg.ChainOrder, ",")),
		zap.Stringer("fraud_threshold", cfg.FraudThreshold),
	)

	txs, err := loadTransactions(cfg.BatchFile)
	if err != nil {
		logger.Fatal("load transactions", zap.String("batch_file", cfg.BatchFile), zap.Error(err))
	}

	d := dispatch.New(head, os.Stdout, logger)
	results, err := d.Run(txs)
	if err != nil {
		logger.Fatal("dispatch", zap.Error(err))
	}

	summary := dispatch.Summarize(results)
	fmt.Fprintln(os.Stdout, summary)
	logger.Info("batch processed",
		zap.Int("processed", summary.Processed),
		zap.Int("approved", summary.Approved),
		zap.Int("rejected_fraud", summary.RejectedFraud),
		zap.Int("rejected_balance", summary.RejectedBalance),
		zap.Int("unhandled", summary.Unhandled),
	)
}

// loadTransactions 在未設定批次檔時回傳內建示範交易。
func loadTransactions(path string) ([]txn.Transaction, error) {
	if path == "" {
		return txn.Samples(), nil
	}
	b, err := storage.LoadBatch(path)
	if err != nil {
		return nil, err
	}
	return b.ToTransactions(), nil
}
