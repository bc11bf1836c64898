// internal/chain/fraud.go

package chain

import (
	"github.com/shopspring/decimal"

	"txnchain/internal/txn"
)

const FraudDetectionName = "fraud_detection"

// FraudDetectionHandler 以金額門檻做簡化的詐欺篩檢。
// 金額低於門檻即核准並結束走訪（不再轉交，包含餘額檢查）；
// 否則有後繼就轉交，沒有後繼則以疑似詐欺拒絕。
type FraudDetectionHandler struct {
	link
	threshold decimal.Decimal
}

func NewFraudDetection(threshold decimal.Decimal) *FraudDetectionHandler {
	return &FraudDetectionHandler{threshold: threshold}
}

// Threshold 回傳目前使用的門檻。
func (h *FraudDetectionHandler) Threshold() decimal.Decimal {
	return h.threshold
}

func (h *FraudDetectionHandler) Handle(tx txn.Transaction) Result {
	if tx.Amount.LessThan(h.threshold) {
		return terminal(FraudDetectionName, Approved, Event{
			Handler:  FraudDetectionName,
			Category: CategorySuccess,
			Message:  "Transaction passed fraud detection. Proceeding...",
		})
	}
	if h.next != nil {
		return h.next.Handle(tx).prepend(Event{
			Handler:  FraudDetectionName,
			Category: CategoryForward,
			Message:  "Potential fraud detected. Checking with the next handler...",
		})
	}
	return terminal(FraudDetectionName, RejectedFraudSuspected, Event{
		Handler:  FraudDetectionName,
		Category: CategoryFailure,
		Message:  "Transaction failed. Potential fraud detected.",
	})
}
