package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/jgoulah/gridreport/pkg/models"
)

// BuildXLSX renders a workbook with a year summary sheet and a daily
// totals sheet.
func BuildXLSX(year int, summaries []models.DailySummary) ([]byte, error) {
	var totalCons, totalProd, tempSum float64
	for _, s := range summaries {
		totalCons += s.ConsumptionKWh
		totalProd += s.ProductionKWh
		tempSum += s.AvgTemperature
	}
	avgTemp := 0.0
	if len(summaries) > 0 {
		avgTemp = tempSum / float64(len(summaries))
	}

	f := excelize.NewFile()
	summarySheet := "summary"
	dailySheet := "daily"
	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, fmt.Errorf("creating daily sheet: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", fmt.Sprintf("Energy report %d", year))
	_ = f.SetCellValue(summarySheet, "A3", "Total consumption (kWh)")
	_ = f.SetCellValue(summarySheet, "B3", totalCons)
	_ = f.SetCellValue(summarySheet, "A4", "Total production (kWh)")
	_ = f.SetCellValue(summarySheet, "B4", totalProd)
	_ = f.SetCellValue(summarySheet, "A5", "Average temperature (°C)")
	_ = f.SetCellValue(summarySheet, "B5", avgTemp)
	_ = f.SetCellValue(summarySheet, "A6", "Days")
	_ = f.SetCellValue(summarySheet, "B6", len(summaries))

	_ = f.SetCellValue(dailySheet, "A1", "Date")
	_ = f.SetCellValue(dailySheet, "B1", "Consumption (kWh)")
	_ = f.SetCellValue(dailySheet, "C1", "Production (kWh)")
	_ = f.SetCellValue(dailySheet, "D1", "Avg temperature (°C)")
	for i, s := range summaries {
		row := i + 2
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("A%d", row), s.Day.Format("2006-01-02"))
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("B%d", row), s.ConsumptionKWh)
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("C%d", row), s.ProductionKWh)
		_ = f.SetCellValue(dailySheet, fmt.Sprintf("D%d", row), s.AvgTemperature)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildPDF renders the year summary and a daily totals table as a PDF.
func BuildPDF(year int, summaries []models.DailySummary) ([]byte, error) {
	var totalCons, totalProd, tempSum float64
	for _, s := range summaries {
		totalCons += s.ConsumptionKWh
		totalProd += s.ProductionKWh
		tempSum += s.AvgTemperature
	}
	avgTemp := 0.0
	if len(summaries) > 0 {
		avgTemp = tempSum / float64(len(summaries))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Energy report %d", year))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total consumption (kWh): %.2f", totalCons))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total production (kWh): %.2f", totalProd))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Average temperature (C): %.2f", avgTemp))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "Consumption (kWh)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(45, 6, "Production (kWh)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Avg temp (C)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, s := range summaries {
		pdf.CellFormat(40, 6, s.Day.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", s.ConsumptionKWh), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", s.ProductionKWh), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", s.AvgTemperature), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}
