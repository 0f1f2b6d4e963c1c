package pipeline

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/projetoapollo/LICITANDO/internal"
	"github.com/projetoapollo/LICITANDO/internal/util"
)

const exportSheet = "Cotacao_Final"

var exportHeaders = []string{
	"Item",
	"Código PDF",
	"Descrição resumida PDF",
	"Unidade",
	"Quantidade",
	"QUANT PESQ (1)",
	"Valor médio do produto",
	"Status",
	"Descrição localidade / Mercado",
	"Fontes",
}

// ExportQuoteTable writes the final item table to an XLSX workbook.
// Prices are rounded to two decimals here, at the output boundary only.
func ExportQuoteTable(rows []internal.QuoteRow, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	_ = f.SetSheetName(sheet, exportSheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(exportSheet, cell, value)
		}

		set(1, derefInt(row.Item))
		set(2, row.Code)
		set(3, row.Description)
		set(4, row.Unit)
		set(5, derefInt(row.Qty))
		set(6, row.SearchQty)
		set(7, roundedPrice(row.AveragePrice))
		set(8, string(row.Status))
		set(9, row.Markets)
		set(10, row.Sources)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func derefInt(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func roundedPrice(v *float64) any {
	if v == nil {
		return ""
	}
	return util.Round2(*v)
}
