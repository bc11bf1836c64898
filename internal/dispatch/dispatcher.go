// internal/dispatch/dispatcher.go

// Package dispatch 將交易依序送入責任鏈首，並負責結果的呈現：
//  1. 每個事件輸出為一行人類可讀文字
//  2. 以 zap 記錄每筆交易的最終結果
//
// 交易逐筆同步處理，不做並行。
package dispatch

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"txnchain/internal/chain"
	"txnchain/internal/logging"
	"txnchain/internal/txn"
)

// Dispatcher 持有鏈首、文字輸出與 logger。
type Dispatcher struct {
	head chain.Handler
	out  io.Writer
	log  *zap.Logger
}

// New 建立 Dispatcher；logger 可為 nil。
func New(head chain.Handler, out io.Writer, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{head: head, out: out, log: logging.OrNop(logger)}
}

// Dispatch 處理單筆交易並輸出其事件。
// 回傳的錯誤只可能來自寫入 out；交易被拒不是錯誤。
func (d *Dispatcher) Dispatch(tx txn.Transaction) (chain.Result, error) {
	r := d.head.Handle(tx)

	for _, ev := range r.Events {
		if _, err := fmt.Fprintln(d.out, ev.Message); err != nil {
			return r, fmt.Errorf("write event: %w", err)
		}
	}

	d.log.Debug("transaction dispatched",
		zap.Stringer("transaction_id", tx.ID),
		zap.Stringer("amount", tx.Amount),
		zap.Stringer("account_balance", tx.AccountBalance),
		zap.Stringer("outcome", r.Outcome),
		zap.String("decided_by", r.DecidedBy),
		zap.Int("events", len(r.Events)),
	)
	return r, nil
}

// Run 依序處理所有交易，遇到第一個寫入錯誤即停止。
func (d *Dispatcher) Run(txs []txn.Transaction) ([]chain.Result, error) {
	results := make([]chain.Result, 0, len(txs))
	for _, tx := range txs {
		r, err := d.Dispatch(tx)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
