package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/deepheart/deepheart-api/schema"
)

const (
	generatedAtLayout = "2006-01-02 15:04:05"
	patientSheet      = "Patients"
)

var patientHeaders = []string{"Patient ID", "Name", "Email", "Registration Date"}

// AnalyticsReport renders a snapshot as a plain text report. Processing
// time is marked as estimated and performance figures as confidence-derived
// since neither is measured.
func AnalyticsReport(email string, s schema.AnalyticsSnapshot, generatedAt time.Time) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "Analytics Report for %s\n", email)
	fmt.Fprintf(&b, "Generated on: %s\n\n", generatedAt.Format(generatedAtLayout))

	fmt.Fprintf(&b, "Total Processed This Month: %d\n", s.TotalProcessedThisMonth)
	fmt.Fprintf(&b, "Average Processing Time: %.2f seconds", s.AverageProcessingTime)
	if s.ProcessingTimeEstimated {
		b.WriteString(" (estimated)")
	}
	b.WriteString("\n\n")

	b.WriteString("Model Performance (confidence-derived, not validated against ground truth):\n")
	fmt.Fprintf(&b, "- Accuracy: %.2f%%\n", s.ModelPerformance.Accuracy)
	fmt.Fprintf(&b, "- AUC: %.2f%%\n", s.ModelPerformance.AUC)
	fmt.Fprintf(&b, "- Sensitivity: %.2f%%\n", s.ModelPerformance.Sensitivity)
	fmt.Fprintf(&b, "- Specificity: %.2f%%\n\n", s.ModelPerformance.Specificity)

	d := s.ClassificationDistribution
	b.WriteString("Classification Distribution:\n")
	fmt.Fprintf(&b, "- Normal: %d\n", d.NORM)
	fmt.Fprintf(&b, "- MI: %d\n", d.MI)
	fmt.Fprintf(&b, "- STTC: %d\n", d.STTC)
	fmt.Fprintf(&b, "- CD: %d\n", d.CD)
	fmt.Fprintf(&b, "- HYP: %d\n", d.HYP)

	if len(s.WeeklyTrends) > 0 {
		b.WriteString("\nDaily Uploads:\n")
		for _, t := range s.WeeklyTrends {
			fmt.Fprintf(&b, "- %s: %d\n", t.Date, t.Uploads)
		}
	}

	return b.Bytes()
}

// PatientWorkbook renders patients as an xlsx workbook with one row per
// patient. Patients without a birthdate show N/A.
func PatientWorkbook(patients []schema.User) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(patientSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for i, h := range patientHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(patientSheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(patientSheet, "A1", "D1", bold); err != nil {
		return nil, err
	}

	for r, p := range patients {
		registered := "N/A"
		if p.Birthdate != nil {
			registered = p.Birthdate.Format("2006-01-02")
		}

		row := []string{p.ID.String(), p.Name, p.Email, registered}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(patientSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(patientSheet, "A", "A", 38); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(patientSheet, "B", "C", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
