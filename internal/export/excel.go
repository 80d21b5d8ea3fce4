package export

import (
	"fmt"

	"warung-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// Layout kolom mengikuti ekspor dashboard: satu sheet "Data", baris pertama
// header, angka ditulis sebagai angka (bukan string) supaya bisa diolah
// lanjut di Excel.

var transactionHeaders = []string{
	"No", "ID", "Tanggal", "Waktu", "Produk", "Customer",
	"Qty", "Harga/Item", "Total", "Profit", "Sumber",
}

var productHeaders = []string{
	"No", "ID", "Nama Produk", "Kategori", "Harga Jual", "Harga Modal",
	"Margin (%)", "Stok", "Min. Stok", "Status",
}

func transactionRows(transactions []models.Transaction) [][]any {
	rows := make([][]any, 0, len(transactions))
	for i, t := range transactions {
		customer := t.Customer
		if customer == "" {
			customer = "-"
		}
		profit := (t.PricePerItem - t.CostPerItem) * float64(t.Quantity)
		rows = append(rows, []any{
			i + 1,
			t.ID,
			t.Date.Format("02/01/2006"),
			t.Date.Format("15:04"),
			t.Product,
			customer,
			t.Quantity,
			t.PricePerItem,
			t.TotalAmount,
			profit,
			string(t.Source),
		})
	}
	return rows
}

func productRows(products []models.Product) [][]any {
	rows := make([][]any, 0, len(products))
	for i, p := range products {
		// margin relatif harga jual, hanya untuk kolom laporan
		margin := "0.00"
		if p.SellingPrice > 0 {
			margin = fmt.Sprintf("%.2f", (p.SellingPrice-p.CostPrice)/p.SellingPrice*100)
		}
		status := "Stok Aman"
		if p.IsLowStock() {
			status = "Stok Rendah"
		}
		rows = append(rows, []any{
			i + 1,
			p.ID,
			p.Name,
			p.Category,
			p.SellingPrice,
			p.CostPrice,
			margin,
			p.CurrentStock,
			p.MinStock,
			status,
		})
	}
	return rows
}

// buildWorkbook - satu sheet berisi header + baris data.
func buildWorkbook(headers []string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
