package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/refdata"
)

// Describer расшифровывает коды должностей и подразделений в подписи.
type Describer interface {
	Describe(kind refdata.Kind, code string) string
}

// EmployeeRoster собирает xlsx-файл со списком сотрудников.
// Возвращает буфер и предлагаемое имя файла.
func EmployeeRoster(employees []dto.Employee, describer Describer) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Сотрудники"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("f.SetSheetName: %w", err)
	}

	headers := []string{
		"Табельный номер", "Фамилия", "Имя", "Почта", "Телефон",
		"Дата приёма", "Должность", "Подразделение", "Оклад",
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("f.SetCellValue: %w", err)
		}
	}

	for i, e := range employees {
		row := i + 2

		values := []any{
			e.EmployeeNumber,
			e.LastName,
			strOrEmpty(e.FirstName),
			e.Email,
			strOrEmpty(e.Phone),
			e.HireDate,
			describer.Describe(refdata.KindJob, e.JobCode),
			describer.Describe(refdata.KindDepartment, e.DepartmentCode),
			salaryOrEmpty(e.Salary),
		}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, "", fmt.Errorf("excelize.CoordinatesToCellName: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("f.SetCellValue: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("f.WriteToBuffer: %w", err)
	}

	filename := fmt.Sprintf("employees_%s.xlsx", time.Now().Format("2006-01-02"))

	return buf, filename, nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func salaryOrEmpty(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}
