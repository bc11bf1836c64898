// internal/chain/handler.go

// Package chain 實作交易檢核的責任鏈 (Chain of Responsibility)。
// 每個 Handler 可處理交易，並自行決定是否轉交給下一個節點。
// Handler 不直接輸出文字：所有狀態以 Event 記錄在 Result 中，
// 由上層 (dispatch) 決定如何呈現，讓商業邏輯可被測試。
package chain

import "txnchain/internal/txn"

// Handler 為責任鏈節點的共同介面。
//   - SetNext：設定下一個節點；重複呼叫時以最後一次為準，不做循環檢查。
//   - Handle：處理交易並回傳整段走訪的結果。
type Handler interface {
	SetNext(next Handler)
	Handle(tx txn.Transaction) Result
}

// Outcome 為交易在鏈上的最終結果。
type Outcome int

const (
	// Unhandled：鏈在沒有任何終結判定的情況下結束（例如 logger 為最後一個節點）。
	Unhandled Outcome = iota
	Approved
	RejectedFraudSuspected
	RejectedInsufficientBalance
)

func (o Outcome) String() string {
	switch o {
	case Approved:
		return "approved"
	case RejectedFraudSuspected:
		return "rejected_fraud_suspected"
	case RejectedInsufficientBalance:
		return "rejected_insufficient_balance"
	default:
		return "unhandled"
	}
}

// Rejected 回報結果是否為拒絕。
func (o Outcome) Rejected() bool {
	return o == RejectedFraudSuspected || o == RejectedInsufficientBalance
}

// Category 為事件的邏輯分類，測試可依分類比對而非依賴確切文字。
type Category int

const (
	CategoryLogEntry Category = iota
	CategoryForward
	CategorySuccess
	CategoryFailure
)

func (c Category) String() string {
	switch c {
	case CategoryLogEntry:
		return "log_entry"
	case CategoryForward:
		return "forward"
	case CategorySuccess:
		return "success"
	case CategoryFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event 為單一節點產生的一行狀態紀錄。
type Event struct {
	Handler  string
	Category Category
	Message  string
}

// Result 為一次完整走訪的結果。
// Events 依發生順序排列；DecidedBy 為做出終結判定的節點名稱（Unhandled 時為空字串）。
type Result struct {
	Outcome   Outcome
	DecidedBy string
	Events    []Event
}

// terminal 建立由單一節點直接終結的結果。
func terminal(name string, o Outcome, ev Event) Result {
	return Result{Outcome: o, DecidedBy: name, Events: []Event{ev}}
}

// prepend 將本節點事件放到後續節點事件之前，維持發生順序。
func (r Result) prepend(events ...Event) Result {
	out := make([]Event, 0, len(events)+len(r.Events))
	out = append(out, events...)
	r.Events = append(out, r.Events...)
	return r
}

// link 為各節點共用的後繼參照；不擁有後繼節點。
type link struct {
	next Handler
}

func (l *link) SetNext(next Handler) {
	l.next = next
}
