package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"backstage-api/pkg/apperr"
	"backstage-api/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps err to its client response. Unexpected failures are
// logged with the cause, expected ones at warn level.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error, operation string) {
	resp := apperr.Map(err)
	requestID, _ := utils.GetRequestID(r.Context())

	fields := []zap.Field{
		zap.String("operation", operation),
		zap.String("code", resp.Code),
		zap.Int("status", resp.Status),
		zap.String("request_id", requestID),
		zap.Error(err),
	}

	if resp.Unexpected {
		log.Error("Failed to "+operation, fields...)
	} else {
		log.Warn(operation+" failed", fields...)
	}

	utils.ResponseError(w, resp)
}

// decodeError turns a JSON decode failure into a VALIDATION_ERROR.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.Validation("Invalid request body", map[string]string{
			typeErr.Field: "Invalid type, got " + typeErr.Value,
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return apperr.Validation("Malformed JSON body", nil)
	}

	return apperr.Validation("Invalid request body", nil)
}
