// internal/storage/jsonstore.go
//
// 提供交易批次檔的 JSON 讀取。
// 讀取失敗（檔案不存在、格式錯誤、沒有任何交易）皆回傳錯誤，由上層決定是否中止。
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmptyBatch 代表批次檔內沒有任何交易。
var ErrEmptyBatch = errors.New("batch has no transactions")

// LoadBatch 讀取指定路徑的 JSON 批次檔。
// 未知欄位會被拒絕，避免拼錯欄位名稱時靜默得到零值金額。
func LoadBatch(path string) (Batch, error) {
	var b Batch
	f, err := os.Open(path)
	if err != nil {
		return b, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return Batch{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(b.Transactions) == 0 {
		return Batch{}, fmt.Errorf("%s: %w", path, ErrEmptyBatch)
	}
	return b, nil
}
