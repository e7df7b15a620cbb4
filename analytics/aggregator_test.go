package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/deepheart/deepheart-api/schema"
)

var fixedNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func testAggregator() *Aggregator {
	a := NewAggregator(time.UTC)
	a.Clock = func() time.Time { return fixedNow }
	return a
}

func record(t time.Time, values [5]float64) schema.EcgRecord {
	return schema.EcgRecord{
		Status:        schema.StatusProcessed,
		Probabilities: schema.NewClassProbabilities(values),
		Timestamp:     t.Unix(),
	}
}

var (
	norm = [5]float64{0.8, 0.05, 0.05, 0.05, 0.05}
	mi   = [5]float64{10, 70, 10, 5, 5}
	sttc = [5]float64{0.1, 0.1, 0.6, 0.1, 0.1}
	hyp  = [5]float64{0.05, 0.05, 0.05, 0.05, 0.8}
)

func TestAggregateEmptyPopulation(t *testing.T) {
	a := testAggregator()
	window := a.DefaultWindow()

	s := a.Aggregate(nil, window)
	assert.Equal(t, schema.ClassificationDistribution{}, s.ClassificationDistribution)
	assert.Len(t, s.WeeklyTrends, DefaultWindowDays)
	for _, d := range s.WeeklyTrends {
		assert.Equal(t, int64(0), d.Uploads)
	}
	assert.Equal(t, schema.ModelPerformance{LastUpdated: fixedNow}, s.ModelPerformance)
	assert.Equal(t, int64(0), s.TotalProcessedThisMonth)
	assert.Equal(t, float64(0), s.AverageProcessingTime)
	assert.True(t, s.ProcessingTimeEstimated)
}

func TestDistribution(t *testing.T) {
	ts := fixedNow.Add(-time.Hour)
	records := []schema.EcgRecord{
		record(ts, norm),
		record(ts, norm),
		record(ts, mi),
		record(ts, sttc),
		record(ts, hyp),
	}

	d := Distribution(records)
	assert.Equal(t, schema.ClassificationDistribution{NORM: 2, MI: 1, STTC: 1, CD: 0, HYP: 1}, d)
	assert.Equal(t, int64(5), d.Total())
}

func TestTrendFillsEmptyDays(t *testing.T) {
	a := testAggregator()
	window, err := ParseDateRange("2024-03-01", "2024-03-03", time.UTC)
	assert.NoError(t, err)

	records := []schema.EcgRecord{
		record(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), norm),
		record(time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC), mi),
		record(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), mi),
		record(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), mi),
	}

	trend := a.Trend(records, window)
	assert.Equal(t, []schema.DailyUploads{
		{Date: "2024-03-01", Uploads: 1},
		{Date: "2024-03-02", Uploads: 0},
		{Date: "2024-03-03", Uploads: 1},
	}, trend)
}

func TestTrendUsesLocationDayBoundaries(t *testing.T) {
	taipei := time.FixedZone("GMT+8", 8*60*60)
	a := testAggregator().WithLocation(taipei)
	window, err := ParseDateRange("2024-03-09", "2024-03-10", taipei)
	assert.NoError(t, err)

	records := []schema.EcgRecord{
		record(time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC), norm),
	}

	trend := a.Trend(records, window)
	assert.Equal(t, int64(0), trend[0].Uploads)
	assert.Equal(t, int64(1), trend[1].Uploads)
}

func TestInvalidDateRange(t *testing.T) {
	_, err := ParseDateRange("2024-03-05", "2024-03-01", time.UTC)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))

	_, err = ParseDateRange("03/01/2024", "2024-03-05", time.UTC)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))

	_, err = NewDateRange(fixedNow, fixedNow.AddDate(0, 0, -1), time.UTC)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))
}

func TestDateRangeIsCapped(t *testing.T) {
	_, err := ParseDateRange("0001-01-01", "9999-12-31", time.UTC)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))

	r, err := ParseDateRange("2024-01-01", "2024-12-31", time.UTC)
	assert.NoError(t, err)
	assert.Len(t, r.Days(), MaxRangeDays)

	_, err = ParseDateRange("2023-01-01", "2024-01-02", time.UTC)
	assert.True(t, errors.Is(err, ErrInvalidDateRange))
}

func TestTrendBucketsAcrossLongRange(t *testing.T) {
	a := testAggregator()
	window, err := ParseDateRange("2023-03-11", "2024-03-10", time.UTC)
	assert.NoError(t, err)

	trend := a.Trend([]schema.EcgRecord{
		record(time.Date(2023, 3, 11, 0, 0, 0, 0, time.UTC), norm),
		record(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), mi),
		record(time.Date(2024, 3, 10, 23, 0, 0, 0, time.UTC), hyp),
		record(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), hyp),
	}, window)

	assert.Len(t, trend, 366)
	assert.Equal(t, schema.DailyUploads{Date: "2023-03-11", Uploads: 1}, trend[0])
	assert.Equal(t, schema.DailyUploads{Date: "2023-12-31", Uploads: 1}, trend[295])
	assert.Equal(t, schema.DailyUploads{Date: "2024-03-10", Uploads: 1}, trend[365])
}

func TestSingleDayRange(t *testing.T) {
	r, err := ParseDateRange("2024-03-05", "2024-03-05", time.UTC)
	assert.NoError(t, err)
	assert.Len(t, r.Days(), 1)
}

func TestDefaultWindow(t *testing.T) {
	w := testAggregator().DefaultWindow()
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), w.End)
	assert.Len(t, w.Days(), 7)
}

func TestAggregateMonthTotalAndProcessingEstimate(t *testing.T) {
	a := testAggregator()
	records := []schema.EcgRecord{
		record(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC), norm),
		record(time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC), norm),
		record(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), mi),
		record(time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), sttc),
	}

	s := a.Aggregate(records, a.DefaultWindow())
	assert.Equal(t, int64(4), s.ClassificationDistribution.Total())
	assert.Equal(t, int64(2), s.TotalProcessedThisMonth)
	assert.InDelta(t, 1.53, s.AverageProcessingTime, 1e-9)
	assert.Equal(t, int64(1), s.WeeklyTrends[5].Uploads)
}

func TestProcessingEstimateIsCapped(t *testing.T) {
	a := testAggregator()
	records := make([]schema.EcgRecord, 0, 500)
	for i := 0; i < 500; i++ {
		records = append(records, record(fixedNow.Add(-time.Minute), norm))
	}

	s := a.Aggregate(records, a.DefaultWindow())
	assert.InDelta(t, 3.5, s.AverageProcessingTime, 1e-9)
}

func TestAggregateRange(t *testing.T) {
	a := testAggregator()
	window, err := ParseDateRange("2024-03-01", "2024-03-03", time.UTC)
	assert.NoError(t, err)

	records := []schema.EcgRecord{
		record(time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC), norm),
		record(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), mi),
		record(time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC), hyp),
	}

	s := a.AggregateRange(records, window)
	assert.Equal(t, schema.ClassificationDistribution{MI: 1}, s.ClassificationDistribution)
	assert.Equal(t, int64(1), s.TotalProcessedThisMonth)
	assert.InDelta(t, 1.52, s.AverageProcessingTime, 1e-9)
	assert.InDelta(t, 70.0, s.ModelPerformance.Accuracy, 1e-9)
	assert.Len(t, s.WeeklyTrends, 3)
}

func TestMonthStart(t *testing.T) {
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), testAggregator().MonthStart())

	taipei := time.FixedZone("GMT+8", 8*60*60)
	a := testAggregator().WithLocation(taipei)
	a.Clock = func() time.Time { return time.Date(2024, 2, 29, 17, 0, 0, 0, time.UTC) }
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, taipei), a.MonthStart())
}

func TestDashboardStats(t *testing.T) {
	a := testAggregator()
	records := []schema.EcgRecord{
		record(time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC), norm),
		record(time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC), mi),
		record(time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC), hyp),
		record(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), hyp),
	}

	stats := a.DashboardStats(records, 12)
	assert.Equal(t, schema.DashboardStats{
		TotalUploads:      4,
		TotalPatients:     12,
		TodaysUploads:     2,
		YesterdaysUploads: 1,
		UploadsChangeRate: 100,
	}, stats)
}
