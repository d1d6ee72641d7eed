package exporter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/exporter"
)

func sampleRows() []exporter.Row {
	return []exporter.Row{
		{Position: "1", Name: "Rent", Amount: decimal.NewFromInt(4000000)},
		{Position: "2", Name: "Food", Amount: decimal.NewFromInt(3000000)},
		{Name: exporter.LabelTotalExpense, Amount: decimal.NewFromInt(7000000)},
		{Name: exporter.LabelBalance, Amount: decimal.NewFromInt(8000000)},
		{Name: exporter.LabelTotalIncome, Amount: decimal.NewFromInt(15000000)},
	}
}

func TestWrite_DispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "out.csv")
	require.NoError(t, exporter.Write(sampleRows(), csvPath))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "STT")

	xlsxPath := filepath.Join(dir, "out.xlsx")
	require.NoError(t, exporter.Write(sampleRows(), xlsxPath))
	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()
	assert.Contains(t, f.GetSheetList(), exporter.SheetName)
}

func TestWriteXLSX_CellContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, exporter.WriteXLSX(sampleRows(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	get := func(cell string) string {
		v, err := f.GetCellValue(exporter.SheetName, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "STT", get("A1"))
	assert.Equal(t, "Nội dung chi tiêu", get("B1"))
	assert.Equal(t, "Số tiền (VNĐ)", get("C1"))

	assert.Equal(t, "1", get("A2"))
	assert.Equal(t, "Rent", get("B2"))
	assert.Equal(t, "4000000", get("C2"))

	// Summary rows carry an empty position cell.
	assert.Empty(t, get("A4"))
	assert.Equal(t, exporter.LabelTotalExpense, get("B4"))
	assert.Equal(t, exporter.LabelTotalIncome, get("B6"))
	assert.Equal(t, "15000000", get("C6"))
}

func TestWriteCSV_ReadEntriesRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, exporter.WriteCSV(sampleRows(), path))

	entries, err := exporter.ReadEntriesCSV(path)
	require.NoError(t, err)

	// Summary rows are skipped: only the two positioned expenses come back.
	require.Len(t, entries, 2)
	assert.Equal(t, "Rent", entries[0].Name)
	assert.Equal(t, "4000000", entries[0].Amount.String())
	assert.Equal(t, "Food", entries[1].Name)
	assert.Equal(t, "3000000", entries[1].Amount.String())
}

func TestWriteCSV_CustomDelimiter(t *testing.T) {
	exporter.SetDelimiter(';')
	defer exporter.SetDelimiter(',')

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, exporter.WriteCSV(sampleRows(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "STT;Nội dung chi tiêu;Số tiền (VNĐ)")
}

func TestWriteCSV_CreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "out.csv")
	require.NoError(t, exporter.WriteCSV(sampleRows(), path))
	assert.FileExists(t, path)
}

func TestReadEntriesCSV_MissingFile(t *testing.T) {
	_, err := exporter.ReadEntriesCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
