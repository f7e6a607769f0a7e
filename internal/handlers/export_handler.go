package handlers

import (
	"fmt"
	"net/http"
	"time"

	"becas-crm/config"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportRow - плоская строка листа выгрузки назначенных стипендий.
type exportRow struct {
	Number          string
	LastName        string
	FirstName       string
	DNI             string
	Status          string
	TuitionPercent  float64
	FixedTotal      float64
	ExcellenceBonus float64
	Total           float64
	DecidedAt       *time.Time
}

// ExportApplicationsHandler выгружает решения по заявкам в Excel.
// Фильтр call_id ограничивает выгрузку одной конвокаторией.
func ExportApplicationsHandler(c *gin.Context) {
	query := config.DB.Table("applications as a").
		Select(`a.number, ap.last_name, ap.first_name, ap.dni, a.status,
			e.tuition_percent, e.fixed_total, e.excellence_bonus, e.total, a.decided_at`).
		Joins("JOIN applicants ap ON ap.id = a.applicant_id").
		Joins("LEFT JOIN evaluations e ON e.application_id = a.id").
		Where("a.deleted_at IS NULL").
		Order("a.id asc")

	if callID := c.Query("call_id"); callID != "" {
		query = query.Where("a.grant_call_id = ?", callID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("a.status = ?", status)
	}

	var rows []exportRow
	if err := query.Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for export"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Решения по заявкам"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Номер заявки", "Фамилия", "Имя", "DNI", "Статус", "Покрытие матрикулы, %", "Фиксированные выплаты", "Бонус за отличие", "Итого", "Дата решения"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Number)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.LastName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.FirstName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.DNI)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.TuitionPercent)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.FixedTotal)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.ExcellenceBonus)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), r.Total)
		if r.DecidedAt != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), r.DecidedAt.Format("02.01.2006"))
		}
	}

	fileName := fmt.Sprintf("becas_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
