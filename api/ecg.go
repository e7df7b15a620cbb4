package api

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/deepheart/deepheart-api/ensemble"
	"github.com/deepheart/deepheart-api/schema"
	"github.com/deepheart/deepheart-api/store"
	"github.com/deepheart/deepheart-api/utils"
)

const (
	uploadStatusOK    = "SUCCESS"
	uploadStatusError = "ERROR"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".dcm":  true,
}

type uploadResult struct {
	EcgID       string                  `json:"ecg_id,omitempty"`
	FileName    string                  `json:"file_name"`
	PatientID   string                  `json:"patient_id"`
	Status      string                  `json:"status"`
	Notes       string                  `json:"notes,omitempty"`
	Timestamp   int64                   `json:"ts,omitempty"`
	Verdict     *schema.EnsembleVerdict `json:"verdict,omitempty"`
	Predictions []schema.Prediction     `json:"predictions,omitempty"`
	Error       *ErrorResponse          `json:"error,omitempty"`
}

type uploadError struct {
	status int
	resp   ErrorResponse
	err    error
}

func newUploadError(status int, resp ErrorResponse, err error) *uploadError {
	return &uploadError{status: status, resp: resp, err: err}
}

// uploadTarget resolves the patient of an upload and checks that the
// current user is allowed to upload for them.
func (s *Server) uploadTarget(c *gin.Context, user *schema.User) (*schema.User, *uploadError) {
	patientID, err := uuid.Parse(c.PostForm("patientId"))
	if err != nil {
		return nil, newUploadError(http.StatusBadRequest, errorInvalidParameters, err)
	}

	patient, err := s.store.GetUser(patientID)
	if err == store.ErrUserNotFound {
		return nil, newUploadError(http.StatusBadRequest, errorUserNotFound, err)
	} else if err != nil {
		return nil, newUploadError(http.StatusInternalServerError, errorInternalServer, err)
	}

	if patient.Role != schema.RolePatient {
		return nil, newUploadError(http.StatusBadRequest, errorUserNotFound, nil)
	}

	if !user.IsAdmin() && (patient.DoctorID == nil || *patient.DoctorID != user.ID) {
		return nil, newUploadError(http.StatusForbidden, errorPermissionDenied, nil)
	}

	return patient, nil
}

// processUpload stores one image, runs both classifiers on it and persists
// the ensemble record together with each model's prediction. A failed
// prediction or record write leaves nothing behind.
func (s *Server) processUpload(c *gin.Context, uploader, patient *schema.User, fh *multipart.FileHeader, notes string) (*uploadResult, *uploadError) {
	logger := log.WithField("api", "processUpload")

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return nil, newUploadError(http.StatusBadRequest, errorUnsupportedFileType, nil)
	}

	filename := uuid.New().String() + "_" + filepath.Base(fh.Filename)
	path := filepath.Join(s.uploadDir, filename)
	if err := c.SaveUploadedFile(fh, path); err != nil {
		return nil, newUploadError(http.StatusInternalServerError, errorCannotStoreFile, err)
	}

	result, err := s.classifier.Predict(c.Request.Context(), path)
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.WithError(rmErr).Warn("cannot remove rejected upload")
		}

		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}

		if errors.Is(err, ensemble.ErrMalformedClassifierOutput) {
			classifierFailures.WithLabelValues("malformed").Inc()
			return nil, newUploadError(http.StatusUnprocessableEntity, errorMalformedClassifierOutput, err)
		}
		classifierFailures.WithLabelValues("unavailable").Inc()
		return nil, newUploadError(http.StatusBadGateway, errorClassifierUnavailable, err)
	}

	localizer := s.localizer(c)
	verdict := result.Described(func(l schema.Label) string {
		return utils.LabelDescription(localizer, l)
	})
	observeVerdict(verdict)

	doctorID := uploader.ID.String()
	if patient.DoctorID != nil {
		doctorID = patient.DoctorID.String()
	}

	record := schema.EcgRecord{
		ID:            uuid.New().String(),
		PatientID:     patient.ID.String(),
		DoctorID:      doctorID,
		Filename:      filename,
		Status:        schema.StatusProcessed,
		Notes:         notes,
		Probabilities: verdict.UnitProbabilities(),
		Timestamp:     time.Now().Unix(),
	}

	if err := s.mongoStore.CreateEcgRecord(record); err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.WithError(rmErr).Warn("cannot remove unrecorded upload")
		}
		return nil, newUploadError(http.StatusInternalServerError, errorInternalServer, err)
	}

	predictions := result.Predictions(record.ID, func() string { return uuid.New().String() })
	if err := s.mongoStore.SavePredictions(predictions); err != nil {
		logger.WithError(err).WithField("ecg_id", record.ID).Error("cannot save model predictions")
	}

	return &uploadResult{
		EcgID:       record.ID,
		FileName:    filename,
		PatientID:   record.PatientID,
		Status:      uploadStatusOK,
		Notes:       notes,
		Timestamp:   record.Timestamp,
		Verdict:     verdict,
		Predictions: predictions,
	}, nil
}

// uploadSingleEcg classifies one uploaded image
func (s *Server) uploadSingleEcg(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	patient, uerr := s.uploadTarget(c, user)
	if uerr != nil {
		abortWithUploadError(c, uerr)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, uerr := s.processUpload(c, user, patient, fh, c.PostForm("notes"))
	if uerr != nil {
		abortWithUploadError(c, uerr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": result,
	})
}

// uploadMultipleEcg classifies every uploaded image and reports one result
// per file. A failing file does not stop the others.
func (s *Server) uploadMultipleEcg(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	patient, uerr := s.uploadTarget(c, user)
	if uerr != nil {
		abortWithUploadError(c, uerr)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	notes := c.PostForm("notes")
	results := make([]uploadResult, 0, len(files))
	for _, fh := range files {
		result, uerr := s.processUpload(c, user, patient, fh, notes)
		if uerr != nil {
			if uerr.err != nil {
				c.Error(uerr.err)
			}
			resp := uerr.resp
			results = append(results, uploadResult{
				FileName:  fh.Filename,
				PatientID: patient.ID.String(),
				Status:    uploadStatusError,
				Error:     &resp,
			})
			continue
		}
		results = append(results, *result)
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     results,
		"total_files": len(files),
	})
}

func abortWithUploadError(c *gin.Context, uerr *uploadError) {
	if uerr.err != nil {
		abortWithEncoding(c, uerr.status, uerr.resp, uerr.err)
		return
	}
	abortWithEncoding(c, uerr.status, uerr.resp)
}

func canAccessRecord(user *schema.User, record *schema.EcgRecord) bool {
	id := user.ID.String()
	return user.IsAdmin() || record.DoctorID == id || record.PatientID == id
}

// ecgRecordMiddleware loads the record named by the ecgID path parameter
// and checks the current user may see it. It attaches an "ecgRecord" key in
// gin's context.
func (s *Server) ecgRecordMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
			return
		}

		record, err := s.mongoStore.GetEcgRecord(c.Param("ecgID"))
		if err == store.ErrRecordNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
			return
		} else if shouldInterupt(err, c) {
			return
		}

		if !canAccessRecord(user, record) {
			abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
			return
		}

		c.Set("ecgRecord", record)
		c.Next()
	}
}

func currentRecord(c *gin.Context) (*schema.EcgRecord, bool) {
	r, exists := c.Get("ecgRecord")
	if !exists {
		return nil, false
	}
	record, ok := r.(*schema.EcgRecord)
	return record, ok
}

// patientRecords lists the records saved to a patient's medical record
func (s *Server) patientRecords(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	patientID, err := uuid.Parse(c.Param("patientID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !user.IsAdmin() && user.ID != patientID {
		patient, err := s.store.GetUser(patientID)
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
			return
		} else if shouldInterupt(err, c) {
			return
		}

		if patient.DoctorID == nil || *patient.DoctorID != user.ID {
			abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
			return
		}
	}

	records, err := s.mongoStore.ListRecordsByPatient(patientID.String(), true)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": records,
	})
}

// saveToPatientRecord marks a record as part of the patient's medical
// record. Only the responsible doctor or an administrator may do this.
func (s *Server) saveToPatientRecord(c *gin.Context) {
	user, _ := currentUser(c)
	record, ok := currentRecord(c)
	if !ok || user == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if !user.IsAdmin() && record.DoctorID != user.ID.String() {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return
	}

	var params struct {
		Notes string `json:"notes"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.BindJSON(&params); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
	}

	saved, err := s.mongoStore.MarkSavedToPatientRecord(record.ID, params.Notes)
	if err == store.ErrRecordNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  saved,
		"message": "ECG saved to patient record.",
	})
}

// ecgPredictions lists what each model said about a record
func (s *Server) ecgPredictions(c *gin.Context) {
	record, ok := currentRecord(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	predictions, err := s.mongoStore.ListPredictions(record.ID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": predictions,
	})
}

// ecgFile serves the uploaded image of a record
func (s *Server) ecgFile(c *gin.Context) {
	record, ok := currentRecord(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	path := filepath.Join(s.uploadDir, filepath.Base(record.Filename))
	if _, err := os.Stat(path); err != nil {
		abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound, err)
		return
	}

	c.File(path)
}
