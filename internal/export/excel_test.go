package export

import (
	"testing"
	"time"

	"warung-backend/internal/models"
)

func TestTransactionRows(t *testing.T) {
	date := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	transactions := []models.Transaction{
		{
			ID:           "tx-1",
			Date:         date,
			Product:      "Kopi Arabica Premium",
			ProductID:    "p1",
			Quantity:     2,
			PricePerItem: 45000,
			CostPerItem:  25000,
			TotalAmount:  90000,
			Source:       models.SourceVoice,
		},
	}

	rows := transactionRows(transactions)

	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	row := rows[0]
	if len(row) != len(transactionHeaders) {
		t.Fatalf("jumlah kolom = %d, want %d", len(row), len(transactionHeaders))
	}

	if row[0] != 1 {
		t.Errorf("kolom No = %v, want 1", row[0])
	}
	if row[2] != "05/03/2025" || row[3] != "14:30" {
		t.Errorf("tanggal/waktu = %v %v, want 05/03/2025 14:30", row[2], row[3])
	}
	if row[5] != "-" {
		t.Errorf("customer kosong harus jadi '-', got %v", row[5])
	}
	if row[9] != 40000.0 {
		t.Errorf("profit = %v, want 40000", row[9])
	}
	if row[10] != "voice" {
		t.Errorf("sumber = %v, want voice", row[10])
	}
}

func TestProductRows(t *testing.T) {
	products := []models.Product{
		{ID: "p1", Name: "Kopi", Category: "Minuman", SellingPrice: 45000, CostPrice: 25000, CurrentStock: 150, MinStock: 20},
		{ID: "p2", Name: "Teh", Category: "Minuman", SellingPrice: 35000, CostPrice: 18000, CurrentStock: 5, MinStock: 15},
	}

	rows := productRows(products)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][6] != "44.44" {
		t.Errorf("margin = %v, want 44.44", rows[0][6])
	}
	if rows[0][9] != "Stok Aman" {
		t.Errorf("status = %v, want Stok Aman", rows[0][9])
	}
	if rows[1][9] != "Stok Rendah" {
		t.Errorf("status = %v, want Stok Rendah", rows[1][9])
	}
}

func TestProductRowsZeroSellingPrice(t *testing.T) {
	rows := productRows([]models.Product{{ID: "p1", Name: "Baru", MinStock: 1}})
	if rows[0][6] != "0.00" {
		t.Errorf("margin produk tanpa harga jual = %v, want 0.00", rows[0][6])
	}
}

func TestBuildWorkbook(t *testing.T) {
	f, err := buildWorkbook(productHeaders, [][]any{{1, "p1", "Kopi", "Minuman", 45000.0, 25000.0, "44.44", 150, 20, "Stok Aman"}})
	if err != nil {
		t.Fatalf("buildWorkbook error: %v", err)
	}

	sheet := f.GetSheetName(0)
	got, err := f.GetCellValue(sheet, "C1")
	if err != nil {
		t.Fatalf("GetCellValue error: %v", err)
	}
	if got != "Nama Produk" {
		t.Errorf("header C1 = %q, want 'Nama Produk'", got)
	}

	got, err = f.GetCellValue(sheet, "C2")
	if err != nil {
		t.Fatalf("GetCellValue error: %v", err)
	}
	if got != "Kopi" {
		t.Errorf("C2 = %q, want 'Kopi'", got)
	}
}
