package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"
)

// PaymentJournal archives settlement records as one JSON file each under a
// history directory. Files are created exclusively and fsynced before the
// caller proceeds, so a journaled settlement survives a crash and a record
// id can never be written twice.
type PaymentJournal struct {
	dir    string
	logger *slog.Logger
}

// NewPaymentJournal creates a journal rooted at dir, creating the directory
// if needed.
func NewPaymentJournal(dir string, logger *slog.Logger) (*PaymentJournal, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewPersistenceFailureError(dir, err)
	}
	return &PaymentJournal{dir: dir, logger: logger}, nil
}

type recordDTO struct {
	ID        string    `json:"id"`
	TableID   string    `json:"table_id"`
	TableName string    `json:"table_name"`
	Scope     string    `json:"scope"`
	PaidAt    time.Time `json:"paid_at"`

	Lines    []recordLineDTO    `json:"lines"`
	Archived []archivedOrderDTO `json:"cancelled,omitempty"`

	Total int `json:"total"`
}

type recordLineDTO struct {
	Client    string `json:"client"`
	DishID    string `json:"dish_id"`
	DishName  string `json:"dish_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
	Subtotal  int    `json:"subtotal"`
}

type archivedOrderDTO struct {
	Client   string `json:"client"`
	DishName string `json:"dish_name"`
	Quantity int    `json:"quantity"`
}

// Append durably stores a settlement record.
func (j *PaymentJournal) Append(ctx context.Context, record *payment.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dto := recordDTO{
		ID:        record.ID(),
		TableID:   record.TableID(),
		TableName: record.TableName(),
		Scope:     record.Scope().String(),
		PaidAt:    record.PaidAt(),
		Total:     record.Total(),
	}
	for _, l := range record.Lines() {
		dto.Lines = append(dto.Lines, recordLineDTO{
			Client:    l.ClientName,
			DishID:    l.DishID,
			DishName:  l.DishName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	for _, a := range record.Archived() {
		dto.Archived = append(dto.Archived, archivedOrderDTO{
			Client:   a.ClientName,
			DishName: a.DishName,
			Quantity: a.Quantity,
		})
	}

	raw, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return j.persistenceFailure(record.ID(), err)
	}

	path := filepath.Join(j.dir, j.fileName(record))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return j.persistenceFailure(path, err)
	}

	if _, err = f.Write(raw); err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return j.persistenceFailure(path, err)
	}

	return nil
}

// fileName builds "<scope>_<tableId>_<timestamp>_<recordId>.json". The
// record id keeps names unique even when two settlements of the same table
// land within the same second.
func (j *PaymentJournal) fileName(record *payment.Record) string {
	return fmt.Sprintf("%s_%s_%s_%s.json",
		strings.ToLower(record.Scope().String()),
		record.TableID(),
		record.PaidAt().UTC().Format("20060102T150405"),
		record.ID())
}

func (j *PaymentJournal) persistenceFailure(path string, cause error) error {
	err := errs.NewPersistenceFailureError(path, cause)
	j.logger.Error("payment journal append failed",
		slog.String("path", path),
		slog.Any("error", cause))
	return err
}
