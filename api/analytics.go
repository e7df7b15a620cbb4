package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepheart/deepheart-api/analytics"
	"github.com/deepheart/deepheart-api/report"
	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func observeSince(view string, start time.Time) {
	analyticsDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}

// analyticsScope resolves whose population an analytics request covers and
// which calendar it uses. Administrators may look at any doctor through the
// doctorId query parameter.
func (s *Server) analyticsScope(c *gin.Context) (uuid.UUID, *analytics.Aggregator, bool) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return uuid.Nil, nil, false
	}

	doctorID := user.ID
	if user.IsAdmin() && c.Query("doctorId") != "" {
		id, err := uuid.Parse(c.Query("doctorId"))
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return uuid.Nil, nil, false
		}
		doctorID = id
	}

	aggregator := s.aggregator
	if tz := c.Query("tz"); tz != "" {
		loc := utils.GetLocation(tz)
		if loc == nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return uuid.Nil, nil, false
		}
		aggregator = aggregator.WithLocation(loc)
	}

	return doctorID, aggregator, true
}

func (s *Server) doctorRecords(c *gin.Context, doctorID uuid.UUID) ([]schema.EcgRecord, bool) {
	records, err := s.mongoStore.ListRecordsByDoctor(doctorID.String())
	if shouldInterupt(err, c) {
		return nil, false
	}
	analyticsPopulation.Observe(float64(len(records)))
	return records, true
}

func (s *Server) dashboardSnapshot(c *gin.Context) (*schema.AnalyticsSnapshot, bool) {
	doctorID, aggregator, ok := s.analyticsScope(c)
	if !ok {
		return nil, false
	}

	records, ok := s.doctorRecords(c, doctorID)
	if !ok {
		return nil, false
	}

	snapshot := aggregator.Aggregate(records, aggregator.DefaultWindow())
	return &snapshot, true
}

// analyticsDashboard returns the full analytics snapshot of a doctor
func (s *Server) analyticsDashboard(c *gin.Context) {
	defer observeSince("dashboard", time.Now())

	snapshot, ok := s.dashboardSnapshot(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": snapshot,
	})
}

func (s *Server) analyticsDistribution(c *gin.Context) {
	defer observeSince("distribution", time.Now())

	doctorID, _, ok := s.analyticsScope(c)
	if !ok {
		return
	}

	records, ok := s.doctorRecords(c, doctorID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": analytics.Distribution(records),
	})
}

// analyticsTrends returns the daily uploads of the last seven days
func (s *Server) analyticsTrends(c *gin.Context) {
	defer observeSince("trends", time.Now())

	doctorID, aggregator, ok := s.analyticsScope(c)
	if !ok {
		return
	}

	window := aggregator.DefaultWindow()
	records, err := s.mongoStore.ListRecordsByDoctorBetween(doctorID.String(), window.Start, window.End.AddDate(0, 0, 1))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": aggregator.Trend(records, window),
	})
}

// analyticsPerformance returns the confidence-derived performance proxies
func (s *Server) analyticsPerformance(c *gin.Context) {
	defer observeSince("performance", time.Now())

	doctorID, aggregator, ok := s.analyticsScope(c)
	if !ok {
		return
	}

	records, ok := s.doctorRecords(c, doctorID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": aggregator.Performance(records),
	})
}

// analyticsRange returns a snapshot restricted to the startDate..endDate
// window, both yyyy-mm-dd and inclusive. Without dates it covers the last
// seven days.
func (s *Server) analyticsRange(c *gin.Context) {
	defer observeSince("range", time.Now())

	doctorID, aggregator, ok := s.analyticsScope(c)
	if !ok {
		return
	}

	window := aggregator.DefaultWindow()
	startDate, endDate := c.Query("startDate"), c.Query("endDate")
	if startDate != "" || endDate != "" {
		w, err := analytics.ParseDateRange(startDate, endDate, aggregator.Location)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidDateRange, err)
			return
		}
		window = w
	}

	records, err := s.mongoStore.ListRecordsByDoctorBetween(doctorID.String(), window.Start, window.End.AddDate(0, 0, 1))
	if shouldInterupt(err, c) {
		return
	}
	analyticsPopulation.Observe(float64(len(records)))

	c.JSON(http.StatusOK, gin.H{
		"result": aggregator.AggregateRange(records, window),
	})
}

// exportReport downloads the dashboard snapshot as a text report
func (s *Server) exportReport(c *gin.Context) {
	defer observeSince("report", time.Now())

	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	snapshot, ok := s.dashboardSnapshot(c)
	if !ok {
		return
	}

	generatedAt := s.aggregator.Clock()
	content := report.AnalyticsReport(user.Email, *snapshot, generatedAt)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=analytics-report-%s.txt", generatedAt.Format("20060102")))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
}

// exportPatients downloads the doctor's patients as a spreadsheet
func (s *Server) exportPatients(c *gin.Context) {
	doctorID, _, ok := s.analyticsScope(c)
	if !ok {
		return
	}

	patients, err := s.store.ListPatients(doctorID)
	if shouldInterupt(err, c) {
		return
	}

	content, err := report.PatientWorkbook(patients)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorCannotGenerate, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=patients.xlsx")
	c.Data(http.StatusOK, xlsxContentType, content)
}

// dashboardStats returns the upload counters of the landing page
func (s *Server) dashboardStats(c *gin.Context) {
	defer observeSince("stats", time.Now())

	doctorID, aggregator, ok := s.analyticsScope(c)
	if !ok {
		return
	}

	records, ok := s.doctorRecords(c, doctorID)
	if !ok {
		return
	}

	patients, err := s.store.CountPatients(doctorID)
	if shouldInterupt(err, c) {
		return
	}

	monthly, err := s.mongoStore.CountRecordsByDoctorSince(doctorID.String(), aggregator.MonthStart())
	if shouldInterupt(err, c) {
		return
	}

	stats := aggregator.DashboardStats(records, patients)
	stats.ProcessedThisMonth = monthly
	c.JSON(http.StatusOK, gin.H{
		"result": stats,
	})
}
