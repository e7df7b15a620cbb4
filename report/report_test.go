package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/deepheart/deepheart-api/schema"
)

func TestAnalyticsReport(t *testing.T) {
	snapshot := schema.AnalyticsSnapshot{
		ClassificationDistribution: schema.ClassificationDistribution{NORM: 3, MI: 1, HYP: 2},
		WeeklyTrends: []schema.DailyUploads{
			{Date: "2024-03-09", Uploads: 2},
			{Date: "2024-03-10", Uploads: 0},
		},
		ModelPerformance: schema.ModelPerformance{
			Accuracy:    60,
			AUC:         65.5,
			Sensitivity: 100,
			Specificity: 50,
		},
		TotalProcessedThisMonth: 6,
		AverageProcessingTime:   1.56,
		ProcessingTimeEstimated: true,
	}
	generatedAt := time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)

	out := string(AnalyticsReport("doctor@example.com", snapshot, generatedAt))

	assert.Contains(t, out, "Analytics Report for doctor@example.com\n")
	assert.Contains(t, out, "Generated on: 2024-03-10 15:04:05\n")
	assert.Contains(t, out, "Total Processed This Month: 6\n")
	assert.Contains(t, out, "Average Processing Time: 1.56 seconds (estimated)\n")
	assert.Contains(t, out, "confidence-derived")
	assert.Contains(t, out, "- Accuracy: 60.00%\n")
	assert.Contains(t, out, "- AUC: 65.50%\n")
	assert.Contains(t, out, "- Sensitivity: 100.00%\n")
	assert.Contains(t, out, "- Specificity: 50.00%\n")
	assert.Contains(t, out, "- Normal: 3\n- MI: 1\n- STTC: 0\n- CD: 0\n- HYP: 2\n")
	assert.Contains(t, out, "- 2024-03-09: 2\n- 2024-03-10: 0\n")
}

func TestAnalyticsReportEmptyPopulation(t *testing.T) {
	out := string(AnalyticsReport("doctor@example.com", schema.AnalyticsSnapshot{}, time.Now()))

	assert.Contains(t, out, "Total Processed This Month: 0\n")
	assert.Contains(t, out, "Average Processing Time: 0.00 seconds\n")
	assert.NotContains(t, out, "(estimated)")
	assert.NotContains(t, out, "Daily Uploads")
}

func TestPatientWorkbook(t *testing.T) {
	birthdate := time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC)
	patients := []schema.User{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Birthdate: &birthdate},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"},
	}

	data, err := PatientWorkbook(patients)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{patientSheet}, f.GetSheetList())

	rows, err := f.GetRows(patientSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, patientHeaders, rows[0])
	assert.Equal(t, []string{patients[0].ID.String(), "Alice", "alice@example.com", "1980-05-17"}, rows[1])
	assert.Equal(t, []string{patients[1].ID.String(), "Bob", "bob@example.com", "N/A"}, rows[2])
}

func TestPatientWorkbookNoPatients(t *testing.T) {
	data, err := PatientWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(patientSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, patientHeaders, rows[0])
}
