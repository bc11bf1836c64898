// internal/storage/model.go
//
// 定義交易批次檔 (batch file) 的結構模型。
// 批次檔只作為輸入：取代內建示範交易，程式不會回寫任何交易資料。
//
// ───────────────────────────────
// 設計理念：
// - **關注分離**：此層僅定義資料格式與讀取，不涉入檢核邏輯。
// - **可追溯性**：Meta 保留來源與版本，便於辨識測試資料出處。
// ───────────────────────────────
package storage

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"txnchain/internal/txn"
)

// Meta 為批次檔的中繼資料。
type Meta struct {
	Source  string `json:"source"`         // 資料來源，例如 "fixture"
	Version int    `json:"version"`        // 格式版本號
	Note    string `json:"note,omitempty"` // 備註
}

// Record 為單筆交易在批次檔中的格式。
// 金額接受 JSON 字串或數字；ID 可省略，讀取時會自動配發。
type Record struct {
	ID             uuid.UUID       `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	AccountBalance decimal.Decimal `json:"account_balance"`
}

// Batch 為一份完整的交易批次。
type Batch struct {
	Meta         Meta     `json:"_meta"`
	Transactions []Record `json:"transactions"`
}

// ToTransactions 依檔案順序轉為 txn.Transaction；ID 缺漏者配發新的 UUID。
func (b Batch) ToTransactions() []txn.Transaction {
	out := make([]txn.Transaction, 0, len(b.Transactions))
	for _, r := range b.Transactions {
		t := txn.New(r.Amount, r.AccountBalance)
		if r.ID != uuid.Nil {
			t.ID = r.ID
		}
		out = append(out, t)
	}
	return out
}
