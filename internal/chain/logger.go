// internal/chain/logger.go

package chain

import "txnchain/internal/txn"

const LoggerName = "logger"

// LoggerHandler 一律記錄交易內容後無條件轉交。
// 沒有後繼時靜默結束（Unhandled），不額外產生「未處理」事件。
type LoggerHandler struct {
	link
}

func NewLogger() *LoggerHandler {
	return &LoggerHandler{}
}

func (h *LoggerHandler) Handle(tx txn.Transaction) Result {
	ev := Event{Handler: LoggerName, Category: CategoryLogEntry, Message: "Transaction logged: " + tx.String()}
	if h.next == nil {
		return Result{Outcome: Unhandled, Events: []Event{ev}}
	}
	return h.next.Handle(tx).prepend(ev)
}
