package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTransactionsDefaultsToSamples(t *testing.T) {
	txs, err := loadTransactions("")
	require.NoError(t, err)
	assert.Len(t, txs, 4)
}

func TestLoadTransactionsFromBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.json")
	body := `{"_meta": {"source": "fixture", "version": 1}, "transactions": [{"amount": "10", "account_balance": "5"}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	txs, err := loadTransactions(path)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Amount: 10, Account Balance: 5", txs[0].String())
}

func TestLoadTransactionsMissingBatch(t *testing.T) {
	_, err := loadTransactions(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
