// internal/chain/errors.go
//
// 本檔集中定義責任鏈組裝時的錯誤。
// 交易被拒屬於商業結果（Outcome），不是錯誤；這裡只有組裝失敗這類系統錯誤。

package chain

import "errors"

var (
	// ErrEmptyChain 代表沒有任何節點可組成鏈。
	ErrEmptyChain = errors.New("chain has no handlers")

	// ErrNilHandler 代表節點清單中含有 nil。
	ErrNilHandler = errors.New("nil handler in chain")

	// ErrUnknownHandler 代表以名稱組裝時遇到未知的節點名稱。
	ErrUnknownHandler = errors.New("unknown handler")

	// ErrBadThreshold 代表詐欺門檻為負數。
	ErrBadThreshold = errors.New("fraud threshold must be >= 0")
)
