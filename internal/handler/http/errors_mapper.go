package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/nightlight-app/storysync/internal/service"
	"github.com/nightlight-app/storysync/internal/store"
	"github.com/nightlight-app/storysync/internal/utils"
	"github.com/nightlight-app/storysync/models"
)

var errorStatusMap = map[error]int{
	service.ErrNoPathsProvided:   http.StatusBadRequest,
	service.ErrTooManyPaths:      http.StatusBadRequest,
	service.ErrTooManyChecksums:  http.StatusBadRequest,
	service.ErrInvalidAssetToken: http.StatusForbidden,

	store.ErrInvalidAssetPath:    http.StatusBadRequest,
	store.ErrStoryNotFound:       http.StatusNotFound,
	store.ErrAssetNotFound:       http.StatusNotFound,
	store.ErrVersionNotFound:     http.StatusNotFound,
	store.ErrCachedAssetNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusServiceUnavailable,
	store.ErrBeginningTransaction: http.StatusServiceUnavailable,
	store.ErrCommitingTransaction: http.StatusServiceUnavailable,
	store.ErrExecutingStatement:   http.StatusServiceUnavailable,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingJSON:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorCodeMap translates sentinels into the wire-contract error codes the
// mobile client switches on. Anything unmapped falls through by HTTP class:
// 4xx → INVALID_REQUEST, 503 → STORAGE_UNAVAILABLE, else INTERNAL_SERVER_ERROR.
var errorCodeMap = map[error]string{
	service.ErrNoPathsProvided:   models.ErrCodeInvalidRequest,
	service.ErrTooManyPaths:      models.ErrCodeInvalidRequest,
	service.ErrTooManyChecksums:  models.ErrCodeInvalidRequest,
	service.ErrInvalidAssetToken: models.ErrCodeInvalidParameter,

	store.ErrInvalidAssetPath: models.ErrCodeInvalidParameter,
	store.ErrStoryNotFound:    models.ErrCodeInvalidParameter,
	store.ErrAssetNotFound:    models.ErrCodeInvalidParameter,
	store.ErrVersionNotFound:  models.ErrCodeInvalidParameter,
}

func codeFromError(err error, status int) string {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}

	switch {
	case status == http.StatusServiceUnavailable:
		return models.ErrCodeStorageUnavailable
	case status >= 400 && status < 500:
		return models.ErrCodeInvalidRequest
	default:
		return models.ErrCodeInternalServerError
	}
}

// writeError emits the uniform JSON error envelope. err may be nil when the
// handler rejects a request before any underlying call (e.g. bad JSON).
func writeError(w http.ResponseWriter, r *http.Request, status int, errorCode, message string) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	utils.WriteJSON(w, models.ErrorResponse{ //nolint:errcheck // nothing left to do on write failure
		Success:   false,
		ErrorCode: errorCode,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID,
	}, status)
}

// writeServiceError maps err to a status and code, then emits the envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := statusFromError(err)
	writeError(w, r, status, codeFromError(err, status), message)
}
