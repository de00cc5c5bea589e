package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/openhired/jobboard/internal/models"
)

const sheetName = "Applications"

var headers = []string{"Application ID", "Job Title", "Applicant", "Applicant Email", "Resume", "Cover Letter", "Applied At"}

// ApplicationsWorkbook flattens applications (with their applicant and
// job resolved) into a spreadsheet ready to stream as a download.
func ApplicationsWorkbook(applications []models.Application) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	for i, app := range applications {
		applicant := fmt.Sprintf("%s %s", app.User.FirstName, app.User.LastName)
		row := []any{
			app.ID,
			app.Job.JobTitle,
			applicant,
			app.User.Email,
			app.ResumeFile,
			app.CoverLetterFile,
			app.AppliedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
