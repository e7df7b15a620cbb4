package schema

import (
	"time"
)

// ClassificationDistribution counts records per label.
type ClassificationDistribution struct {
	NORM int64 `json:"norm"`
	MI   int64 `json:"mi"`
	STTC int64 `json:"sttc"`
	CD   int64 `json:"cd"`
	HYP  int64 `json:"hyp"`
}

// Add increments the bucket of a label.
func (d *ClassificationDistribution) Add(l Label) {
	switch l {
	case LabelNORM:
		d.NORM++
	case LabelMI:
		d.MI++
	case LabelSTTC:
		d.STTC++
	case LabelCD:
		d.CD++
	case LabelHYP:
		d.HYP++
	}
}

func (d ClassificationDistribution) Total() int64 {
	return d.NORM + d.MI + d.STTC + d.CD + d.HYP
}

// DailyUploads is one entry of a trend.
type DailyUploads struct {
	Date    string `json:"date"`
	Uploads int64  `json:"uploads"`
}

// ModelPerformance holds confidence-derived proxies. No ground truth exists
// in this system, so none of these are validated clinical metrics.
type ModelPerformance struct {
	Accuracy    float64   `json:"accuracy"`
	AUC         float64   `json:"auc"`
	Sensitivity float64   `json:"sensitivity"`
	Specificity float64   `json:"specificity"`
	LastUpdated time.Time `json:"last_updated"`
}

// AnalyticsSnapshot is recomputed on every request and never persisted.
type AnalyticsSnapshot struct {
	ClassificationDistribution ClassificationDistribution `json:"classification_distribution"`
	WeeklyTrends               []DailyUploads             `json:"weekly_trends"`
	ModelPerformance           ModelPerformance           `json:"model_performance"`
	TotalProcessedThisMonth    int64                      `json:"total_processed_this_month"`
	AverageProcessingTime      float64                    `json:"average_processing_time"`
	ProcessingTimeEstimated    bool                       `json:"average_processing_time_estimated"`
}

type DashboardStats struct {
	TotalUploads       int64   `json:"total_uploads"`
	TotalPatients      int64   `json:"total_patients"`
	TodaysUploads      int64   `json:"todays_uploads"`
	YesterdaysUploads  int64   `json:"yesterdays_uploads"`
	UploadsChangeRate  float64 `json:"uploads_change_rate"`
	ProcessedThisMonth int64   `json:"processed_this_month"`
}
