package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakumate/saku/internal/model"
)

func TestBalance(t *testing.T) {
	t.Run("empty input yields zero", func(t *testing.T) {
		assert.Equal(t, int64(0), Balance(nil))
		assert.Equal(t, int64(0), TotalIncome(nil))
		assert.Equal(t, int64(0), TotalExpense(nil))
	})

	t.Run("income adds and expense subtracts", func(t *testing.T) {
		txs := []model.Transaction{
			tx(model.TypeIncome, "gaji", 1000000, testNow),
			tx(model.TypeExpense, "makan", 250000, testNow),
			tx(model.TypeExpense, "transport", 50000, testNow),
		}

		assert.Equal(t, int64(700000), Balance(txs))
		assert.Equal(t, int64(1000000), TotalIncome(txs))
		assert.Equal(t, int64(300000), TotalExpense(txs))
	})

	t.Run("balance equals income minus expense", func(t *testing.T) {
		txs := []model.Transaction{
			tx(model.TypeIncome, "kiriman", 1500000, testNow),
			tx(model.TypeIncome, "freelance", 320000, testNow.AddDate(0, 0, -3)),
			tx(model.TypeExpense, "belanja", 75000, testNow.AddDate(0, 0, -1)),
			tx(model.TypeExpense, "tagihan", 410000, testNow.AddDate(0, 0, -10)),
			tx(model.TypeExpense, "nongkrong", 28000, testNow),
		}

		assert.Equal(t, TotalIncome(txs)-TotalExpense(txs), Balance(txs))
	})
}
