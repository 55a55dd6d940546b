package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakumate/saku/internal/model"
)

func TestWriteAndReadTransactions(t *testing.T) {
	date := time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)
	txs := []model.Transaction{
		{ID: "a", Type: model.TypeIncome, Category: "gaji", Amount: 4000000, Date: date},
		{ID: "b", Type: model.TypeExpense, Category: "makan", Amount: 25000, Note: "sarapan, nasi uduk", WalletID: "w1", Date: date.Add(time.Hour)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))

	got, rowErrs, err := ReadTransactions(&buf)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Equal(t, txs, got)
}

func TestReadTransactionsSkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"id,type,category,amount,note,wallet_id,date",
		"a,income,gaji,1000,,,2024-06-10T09:30:00Z",
		"b,transfer,gaji,1000,,,2024-06-10T09:30:00Z", // unknown type
		"c,expense,makan,abc,,,2024-06-10T09:30:00Z",  // bad amount
		"d,expense,makan,-5,,,2024-06-10T09:30:00Z",   // negative amount
		"e,expense,makan,5000,,,yesterday",            // bad date
		"f,expense,makan,5000,,,2024-06-11T12:00:00Z",
	}, "\n")

	got, rowErrs, err := ReadTransactions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Len(t, rowErrs, 4)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "f", got[1].ID)
}

func TestReadTransactionsEdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got, rowErrs, err := ReadTransactions(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Empty(t, rowErrs)
	})

	t.Run("header only", func(t *testing.T) {
		got, rowErrs, err := ReadTransactions(strings.NewReader("id,type,category,amount,note,wallet_id,date\n"))
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Empty(t, rowErrs)
	})

	t.Run("foreign file rejected", func(t *testing.T) {
		_, _, err := ReadTransactions(strings.NewReader("name,balance\nx,1\n"))
		assert.Error(t, err)
	})
}
