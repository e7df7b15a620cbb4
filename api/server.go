package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/deepheart/deepheart-api/analytics"
	"github.com/deepheart/deepheart-api/external/classifier"
	"github.com/deepheart/deepheart-api/logmodule"
	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/store"
	"github.com/deepheart/deepheart-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.DeepHeartCore
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// ensemble of the two ECG classifiers
	classifier *classifier.Dual

	aggregator *analytics.Aggregator

	// directory of uploaded ECG images
	uploadDir string
}

// NewServer new instance of server
func NewServer(
	core store.DeepHeartCore,
	mongoStore store.MongoStore,
	jwtKey *rsa.PrivateKey,
	dual *classifier.Dual,
	aggregator *analytics.Aggregator,
	uploadDir string) *Server {
	return &Server{
		store:         core,
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
		classifier:    dual,
		aggregator:    aggregator,
		uploadDir:     uploadDir,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)
	apiRoute.POST("/users/signup", s.userSignup)

	// api route other than `/auth` and `/users/signup` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeUserMiddleware())

	apiRoute.GET("/users/me", s.userDetail)

	staffOnly := s.roleGateway(schema.RoleDoctor, schema.RoleAdmin)

	patientRoute := apiRoute.Group("/patients")
	patientRoute.Use(staffOnly)
	{
		patientRoute.GET("", s.listPatients)
	}

	ecgRoute := apiRoute.Group("/ecg")
	{
		ecgRoute.POST("/upload/single", staffOnly, s.uploadSingleEcg)
		ecgRoute.POST("/upload", staffOnly, s.uploadMultipleEcg)
		ecgRoute.GET("/patient/:patientID/records", s.patientRecords)
	}

	recordRoute := ecgRoute.Group("/:ecgID")
	recordRoute.Use(s.ecgRecordMiddleware())
	{
		recordRoute.POST("/save-to-record", staffOnly, s.saveToPatientRecord)
		recordRoute.GET("/predictions", s.ecgPredictions)
		recordRoute.GET("/file", s.ecgFile)
	}

	analyticsRoute := apiRoute.Group("/analytics")
	analyticsRoute.Use(staffOnly)
	{
		analyticsRoute.GET("/dashboard", s.analyticsDashboard)
		analyticsRoute.GET("/distribution", s.analyticsDistribution)
		analyticsRoute.GET("/trends", s.analyticsTrends)
		analyticsRoute.GET("/performance", s.analyticsPerformance)
		analyticsRoute.GET("/range", s.analyticsRange)
		analyticsRoute.GET("/export/report", s.exportReport)
		analyticsRoute.GET("/export/patients", s.exportPatients)
	}

	dashboardRoute := apiRoute.Group("/dashboard")
	dashboardRoute.Use(staffOnly)
	{
		dashboardRoute.GET("/stats", s.dashboardStats)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", metricsHandler())
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}

		apiToken := c.GetHeader("Api-Token")
		if apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func (s *Server) localizer(c *gin.Context) *i18n.Localizer {
	return utils.NewLocalizer(c.GetHeader("Accept-Language"))
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
