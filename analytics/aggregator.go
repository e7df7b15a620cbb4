package analytics

import (
	"math"
	"time"

	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/score"
)

const (
	DefaultWindowDays = 7

	recentDays = 30

	// The processing time is synthetic: no upload is timed. It grows with
	// recent volume and is capped at baseProcessingTime + maxComplexity.
	baseProcessingTime    = 1.5
	maxComplexity         = 2.0
	dashboardVolumeScale  = 100.0
	rangeQueryVolumeScale = 50.0
)

// Aggregator turns a set of stored records into analytics. It keeps no
// state between calls.
type Aggregator struct {
	Clock    func() time.Time
	Location *time.Location
}

func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{Clock: time.Now, Location: loc}
}

// WithLocation returns a copy of the aggregator that uses loc for calendar
// days. A nil loc keeps the current one.
func (a *Aggregator) WithLocation(loc *time.Location) *Aggregator {
	if loc == nil {
		return a
	}
	return &Aggregator{Clock: a.Clock, Location: loc}
}

func (a *Aggregator) now() time.Time {
	return a.Clock().In(a.Location)
}

// DefaultWindow is the seven days ending today.
func (a *Aggregator) DefaultWindow() DateRange {
	return LastDays(a.now(), DefaultWindowDays)
}

// Distribution classifies every record and counts the labels.
func Distribution(records []schema.EcgRecord) schema.ClassificationDistribution {
	var d schema.ClassificationDistribution
	for _, r := range records {
		label, _ := score.Classify(r.Probabilities)
		d.Add(label)
	}
	return d
}

// Trend returns one entry per day of the window, zero days included.
func (a *Aggregator) Trend(records []schema.EcgRecord, window DateRange) []schema.DailyUploads {
	days := window.Days()
	counts := make([]int64, len(days))
	for _, r := range records {
		t := r.Time().In(a.Location)
		if !window.Contains(t) {
			continue
		}
		counts[daysBetween(window.Start, t.In(window.Start.Location()))]++
	}

	trend := make([]schema.DailyUploads, len(days))
	for i, d := range days {
		trend[i] = schema.DailyUploads{Date: d.Format(DateLayout), Uploads: counts[i]}
	}
	return trend
}

// Performance computes the confidence-derived proxies of the records.
func (a *Aggregator) Performance(records []schema.EcgRecord) schema.ModelPerformance {
	return score.ModelPerformance(probabilities(records), a.Clock())
}

func probabilities(records []schema.EcgRecord) []schema.ClassProbabilities {
	probs := make([]schema.ClassProbabilities, 0, len(records))
	for _, r := range records {
		probs = append(probs, r.Probabilities)
	}
	return probs
}

func countSince(records []schema.EcgRecord, since time.Time) int64 {
	var n int64
	for _, r := range records {
		if !r.Time().Before(since) {
			n++
		}
	}
	return n
}

func estimateProcessingTime(n int64, volumeScale float64) float64 {
	if n == 0 {
		return 0
	}
	return baseProcessingTime + math.Min(float64(n)/volumeScale, maxComplexity)
}

// Aggregate builds the dashboard snapshot of a doctor's whole population.
// The distribution and the performance proxies cover every record, the
// trend covers window only.
func (a *Aggregator) Aggregate(records []schema.EcgRecord, window DateRange) schema.AnalyticsSnapshot {
	now := a.now()
	monthStart := a.MonthStart()

	return schema.AnalyticsSnapshot{
		ClassificationDistribution: Distribution(records),
		WeeklyTrends:               a.Trend(records, window),
		ModelPerformance:           a.Performance(records),
		TotalProcessedThisMonth:    countSince(records, monthStart),
		AverageProcessingTime:      estimateProcessingTime(countSince(records, now.AddDate(0, 0, -recentDays)), dashboardVolumeScale),
		ProcessingTimeEstimated:    true,
	}
}

// MonthStart is midnight of the first day of the current month.
func (a *Aggregator) MonthStart() time.Time {
	y, m, _ := a.now().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, a.Location)
}

// AggregateRange builds a snapshot restricted to the records inside window.
func (a *Aggregator) AggregateRange(records []schema.EcgRecord, window DateRange) schema.AnalyticsSnapshot {
	inside := make([]schema.EcgRecord, 0, len(records))
	for _, r := range records {
		if window.Contains(r.Time().In(a.Location)) {
			inside = append(inside, r)
		}
	}

	return schema.AnalyticsSnapshot{
		ClassificationDistribution: Distribution(inside),
		WeeklyTrends:               a.Trend(inside, window),
		ModelPerformance:           a.Performance(inside),
		TotalProcessedThisMonth:    int64(len(inside)),
		AverageProcessingTime:      estimateProcessingTime(int64(len(inside)), rangeQueryVolumeScale),
		ProcessingTimeEstimated:    true,
	}
}

// DashboardStats summarises upload volume for the landing page.
func (a *Aggregator) DashboardStats(records []schema.EcgRecord, patientCount int64) schema.DashboardStats {
	today := LastDays(a.now(), 1)
	yesterday := DateRange{Start: today.Start.AddDate(0, 0, -1), End: today.Start.AddDate(0, 0, -1)}

	var todays, yesterdays int64
	for _, r := range records {
		t := r.Time().In(a.Location)
		switch {
		case today.Contains(t):
			todays++
		case yesterday.Contains(t):
			yesterdays++
		}
	}

	return schema.DashboardStats{
		TotalUploads:      int64(len(records)),
		TotalPatients:     patientCount,
		TodaysUploads:     todays,
		YesterdaysUploads: yesterdays,
		UploadsChangeRate: score.ChangeRate(float64(todays), float64(yesterdays)),
	}
}
