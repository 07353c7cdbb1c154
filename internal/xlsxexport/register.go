// Package xlsxexport writes the invoice register as an Excel workbook.
package xlsxexport

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
)

// SheetName is the worksheet holding the register.
const SheetName = "Invoices"

// moneyColumns are the zero-based register columns written as numbers.
var moneyColumns = map[int]bool{6: true, 7: true, 8: true, 9: true, 10: true, 11: true, 12: true, 13: true, 14: true, 15: true}

// WriteRegister writes a single-sheet workbook to w with the same columns as
// the CSV export. Amounts are numeric cells so totals can be summed in Excel.
func WriteRegister(w io.Writer, invoices []domain.Invoice, customerNames map[string]string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("xlsxexport: rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsxexport: header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("xlsxexport: money style: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("xlsxexport: stream writer: %w", err)
	}
	if err := sw.SetColWidth(1, len(csvexport.Columns), 16); err != nil {
		return fmt.Errorf("xlsxexport: column width: %w", err)
	}

	header := make([]interface{}, len(csvexport.Columns))
	for i, c := range csvexport.Columns {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: c}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("xlsxexport: header: %w", err)
	}

	for i := range invoices {
		inv := &invoices[i]
		text := csvexport.Row(inv, customerNames[inv.CustomerID.String()])
		amounts := amountsOf(inv)

		row := make([]interface{}, len(text))
		for col, v := range text {
			if moneyColumns[col] {
				row[col] = excelize.Cell{StyleID: moneyStyle, Value: amounts[col].InexactFloat64()}
				continue
			}
			row[col] = v
		}
		row[17] = len(inv.Items)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsxexport: cell name: %w", err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("xlsxexport: row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("xlsxexport: flush: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsxexport: write: %w", err)
	}
	return nil
}

func amountsOf(inv *domain.Invoice) map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		6:  inv.Subtotal,
		7:  inv.TotalDiscount,
		8:  inv.OverallDiscount,
		9:  inv.CGST,
		10: inv.SGST,
		11: inv.IGST,
		12: inv.TotalTax,
		13: inv.GrandTotal,
		14: inv.PaidAmount,
		15: inv.DueAmount,
	}
}
