// internal/chain/chain.go

package chain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultOrder 為示範用的節點順序：logger → fraud_detection → balance_check。
var DefaultOrder = []string{LoggerName, FraudDetectionName, BalanceName}

// DefaultFraudThreshold 為預設詐欺門檻。
var DefaultFraudThreshold = decimal.NewFromInt(1000)

// Link 依序以 SetNext 串接節點，回傳鏈首。
// 串接結果為無循環的單向鏈；最後一個節點的後繼會被清為 nil。
func Link(handlers ...Handler) (Handler, error) {
	if len(handlers) == 0 {
		return nil, ErrEmptyChain
	}
	for i, h := range handlers {
		if h == nil {
			return nil, fmt.Errorf("position %d: %w", i, ErrNilHandler)
		}
	}
	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	handlers[len(handlers)-1].SetNext(nil)
	return handlers[0], nil
}

// Build 依名稱建立節點並串接。
// 接受的名稱：logger、fraud_detection（fraud）、balance_check（balance），不分大小寫。
// 順序在啟動時決定，之後不再變更。
func Build(names []string, threshold decimal.Decimal) (Handler, error) {
	if threshold.IsNegative() {
		return nil, fmt.Errorf("%s: %w", threshold, ErrBadThreshold)
	}
	handlers := make([]Handler, 0, len(names))
	for _, name := range names {
		h, err := newByName(name, threshold)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, h)
	}
	return Link(handlers...)
}

func newByName(name string, threshold decimal.Decimal) (Handler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LoggerName:
		return NewLogger(), nil
	case FraudDetectionName, "fraud":
		return NewFraudDetection(threshold), nil
	case BalanceName, "balance":
		return NewBalance(), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownHandler)
}
