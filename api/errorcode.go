package api

import (
	"github.com/deepheart/deepheart-api/analytics"
	"github.com/deepheart/deepheart-api/ensemble"
	"github.com/deepheart/deepheart-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "permission denied",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrUserExists.Error(),
		1101: "user not found",
		1102: store.ErrInvalidCredentials.Error(),

		1200: store.ErrRecordNotFound.Error(),
		1201: "unsupported file type",
		1202: "cannot store uploaded file",

		1300: ensemble.ErrMalformedClassifierOutput.Error(),
		1301: "classifier is unavailable",

		1400: analytics.ErrInvalidDateRange.Error(),
		1401: "cannot generate report",
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorPermissionDenied           = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorUserTaken          = errorJSON(1100)
	errorUserNotFound       = errorJSON(1101)
	errorInvalidCredentials = errorJSON(1102)

	errorRecordNotFound      = errorJSON(1200)
	errorUnsupportedFileType = errorJSON(1201)
	errorCannotStoreFile     = errorJSON(1202)

	errorMalformedClassifierOutput = errorJSON(1300)
	errorClassifierUnavailable     = errorJSON(1301)

	errorInvalidDateRange = errorJSON(1400)
	errorCannotGenerate   = errorJSON(1401)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
