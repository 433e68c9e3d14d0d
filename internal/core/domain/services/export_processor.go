package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"orderprocessing/internal/core/domain/model/order"
	"orderprocessing/internal/core/ports"
	"orderprocessing/internal/pkg/errs"
)

// HighValueExportThreshold is the amount above which an export carries a note row.
const HighValueExportThreshold = 150

var exportHeader = []string{"ID", "Type", "Amount", "Flag", "Status", "Priority"}

// ExportProcessor writes type A orders to a CSV export and marks them Exported,
// or ExportFailed when the export cannot be written. A failed export is also
// returned as an errs.ExportError so the caller can report it; the order
// itself is already settled at that point.
type ExportProcessor struct {
	sink ports.ExportSink
	now  func() time.Time
}

// NewExportProcessor creates the type A rule. now defaults to time.Now when nil.
func NewExportProcessor(sink ports.ExportSink, now func() time.Time) ExportProcessor {
	if now == nil {
		now = time.Now
	}
	return ExportProcessor{
		sink: sink,
		now:  now,
	}
}

// ExportName returns the sink name for an order exported at the given time.
func ExportName(orderID int64, at time.Time) string {
	return fmt.Sprintf("orders_type_A_%d_%d.csv", orderID, at.Unix())
}

func (p ExportProcessor) Process(_ context.Context, o *order.Order) error {
	if o.Type() != order.TypeA {
		return nil
	}

	if err := p.export(o); err != nil {
		if statusErr := o.SetStatus(order.ExportFailed); statusErr != nil {
			return statusErr
		}
		return err
	}

	return o.SetStatus(order.Exported)
}

func (p ExportProcessor) export(o *order.Order) (err error) {
	name := ExportName(o.ID(), p.now())

	w, err := p.sink.Create(name)
	if err != nil {
		return errs.NewExportErrorWithCause(name, err)
	}

	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = errs.NewExportErrorWithCause(name, closeErr)
		}
	}()

	if err = writeExportRows(w, o); err != nil {
		return errs.NewExportErrorWithCause(name, err)
	}

	return nil
}

// writeExportRows writes the header, the order row and, for high value orders,
// a trailing note row. Status and priority are written as they are before the
// export outcome is recorded.
func writeExportRows(w io.Writer, o *order.Order) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		exportHeader,
		{
			strconv.FormatInt(o.ID(), 10),
			o.Type().String(),
			formatAmount(o.Amount()),
			strconv.FormatBool(o.Flag()),
			o.Status().String(),
			o.Priority().String(),
		},
	}

	if o.Amount() > HighValueExportThreshold {
		rows = append(rows, []string{"", "", "", "", "Note", "High value order"})
	}

	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}

// formatAmount renders the amount the way the CSV consumers expect it: always
// with a fractional part ("100.0"), switching to exponent form outside
// [1e-4, 1e16).
func formatAmount(amount float64) string {
	if abs := math.Abs(amount); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(amount, 'e', -1, 64)
	}

	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
