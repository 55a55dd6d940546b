// Package export reads and writes transaction snapshots as CSV so a
// database can be backed up or moved between machines.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sakumate/saku/internal/model"
)

// csvHeader is the column layout of a transaction snapshot.
var csvHeader = []string{"id", "type", "category", "amount", "note", "wallet_id", "date"}

// WriteTransactions writes transactions as CSV, header first.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, txn := range txs {
		record := []string{
			txn.ID,
			string(txn.Type),
			txn.Category,
			strconv.FormatInt(txn.Amount, 10),
			txn.Note,
			txn.WalletID,
			txn.Date.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", txn.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// RowError describes a snapshot row that could not be parsed.
type RowError struct {
	Err  error
	Line int
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ReadTransactions parses a transaction snapshot. Malformed rows are
// collected rather than aborting the whole import; the caller decides
// whether to surface them.
func ReadTransactions(r io.Reader) ([]model.Transaction, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	if header[0] != csvHeader[0] {
		return nil, nil, fmt.Errorf("unrecognized header %q", header[0])
	}

	var txs []model.Transaction
	var rowErrs []RowError
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}

		txn, err := parseRecord(record)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Err: err})
			continue
		}
		txs = append(txs, txn)
	}

	return txs, rowErrs, nil
}

func parseRecord(record []string) (model.Transaction, error) {
	txType := model.TransactionType(record[1])
	if !txType.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown type %q", record[1])
	}

	amount, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad amount %q: %w", record[3], err)
	}
	if amount < 0 {
		return model.Transaction{}, fmt.Errorf("negative amount %d", amount)
	}

	date, err := time.Parse(time.RFC3339, record[6])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("bad date %q: %w", record[6], err)
	}

	return model.Transaction{
		ID:       record[0],
		Type:     txType,
		Category: record[2],
		Amount:   amount,
		Note:     record[4],
		WalletID: record[5],
		Date:     date,
	}, nil
}
