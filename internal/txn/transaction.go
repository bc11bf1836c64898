// internal/txn/transaction.go

// Package txn 定義交易實體：金額與帳戶餘額。
// 本套件只描述資料本身，不含任何檢核、輸出或儲存細節。
// 金額以 decimal.Decimal 表示，避免浮點誤差。
package txn

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction 為一筆待檢核的交易。
// 建立後不可變更（值型別，無任何 setter），在責任鏈中僅被讀取。
type Transaction struct {
	ID             uuid.UUID       `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	AccountBalance decimal.Decimal `json:"account_balance"`
}

// New 以金額與帳戶餘額建立交易，並配發新的 UUID 作為識別碼。
// 不檢查負值；非負僅為呼叫端的假設。
func New(amount, balance decimal.Decimal) Transaction {
	return Transaction{ID: uuid.New(), Amount: amount, AccountBalance: balance}
}

// String 回傳人類可讀的交易內容，供日誌事件使用。
func (t Transaction) String() string {
	return fmt.Sprintf("Amount: %s, Account Balance: %s", t.Amount.String(), t.AccountBalance.String())
}

// Samples 回傳固定的示範交易（依序）：
// 500/1000、2000/1500、300/200、5000/4000。
func Samples() []Transaction {
	return []Transaction{
		New(decimal.NewFromInt(500), decimal.NewFromInt(1000)),
		New(decimal.NewFromInt(2000), decimal.NewFromInt(1500)),
		New(decimal.NewFromInt(300), decimal.NewFromInt(200)),
		New(decimal.NewFromInt(5000), decimal.NewFromInt(4000)),
	}
}
