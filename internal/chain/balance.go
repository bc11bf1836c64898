// internal/chain/balance.go

package chain

import "txnchain/internal/txn"

const BalanceName = "balance_check"

// BalanceHandler 檢查金額是否不超過帳戶餘額 (amount <= balance)。
type BalanceHandler struct {
	link
}

func NewBalance() *BalanceHandler {
	return &BalanceHandler{}
}

func (h *BalanceHandler) Handle(tx txn.Transaction) Result {
	if tx.Amount.LessThanOrEqual(tx.AccountBalance) {
		return terminal(BalanceName, Approved, Event{
			Handler:  BalanceName,
			Category: CategorySuccess,
			Message:  "Sufficient balance. Transaction successful!",
		})
	}
	if h.next != nil {
		return h.next.Handle(tx).prepend(Event{
			Handler:  BalanceName,
			Category: CategoryForward,
			Message:  "Insufficient balance. Checking with the next handler...",
		})
	}
	return terminal(BalanceName, RejectedInsufficientBalance, Event{
		Handler:  BalanceName,
		Category: CategoryFailure,
		Message:  "Transaction failed. Insufficient balance.",
	})
}
