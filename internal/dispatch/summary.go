// internal/dispatch/summary.go

package dispatch

import (
	"fmt"

	"txnchain/internal/chain"
)

// Summary 統計一批交易的結果分布。
type Summary struct {
	Processed       int
	Approved        int
	RejectedFraud   int
	RejectedBalance int
	Unhandled       int
}

func Summarize(results []chain.Result) Summary {
	var s Summary
	for _, r := range results {
		s.Processed++
		switch r.Outcome {
		case chain.Approved:
			s.Approved++
		case chain.RejectedFraudSuspected:
			s.RejectedFraud++
		case chain.RejectedInsufficientBalance:
			s.RejectedBalance++
		default:
			s.Unhandled++
		}
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("processed=%d approved=%d rejected_fraud=%d rejected_balance=%d unhandled=%d",
		s.Processed, s.Approved, s.RejectedFraud, s.RejectedBalance, s.Unhandled)
}
