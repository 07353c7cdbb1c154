package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gstbill/internal/domain"
	"gstbill/internal/xlsxexport"
)

func TestWriteRegister(t *testing.T) {
	customerID := uuid.New()
	invoices := []domain.Invoice{
		{
			CustomerID:    customerID,
			InvoiceNumber: "INV-20250115103000",
			InvoiceDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			Jurisdiction:  domain.JurisdictionInter,
			DiscountMode:  domain.DiscountModeAbsolute,
			Subtotal:      decimal.RequireFromString("4500"),
			TotalTax:      decimal.RequireFromString("810"),
			IGST:          decimal.RequireFromString("810"),
			GrandTotal:    decimal.RequireFromString("5310"),
			DueAmount:     decimal.RequireFromString("5310"),
			Status:        domain.PaymentStatusDue,
			Items:         make([]domain.InvoiceItem, 3),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteRegister(&buf, invoices, map[string]string{customerID.String(): "Acme"}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(xlsxexport.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "INV-20250115103000", rows[1][0])
	assert.Equal(t, "Acme", rows[1][3])
	assert.Equal(t, "INTER", rows[1][4])

	grand, err := f.GetCellValue(xlsxexport.SheetName, "N2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "5310", grand)

	count, err := f.GetCellValue(xlsxexport.SheetName, "R2")
	require.NoError(t, err)
	assert.Equal(t, "3", count)
}

func TestWriteRegister_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, xlsxexport.WriteRegister(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(xlsxexport.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], 19)
}
