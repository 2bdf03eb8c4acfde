package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/numwords/pkg/logger"
	"github.com/dmitrymomot/numwords/pkg/numwords"
	"github.com/dmitrymomot/numwords/pkg/wordbook"
)

// Response is the envelope of every JSON body: data on success, error otherwise.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WordsResult is the data of a successful conversion.
type WordsResult struct {
	Words    string  `json:"words"`
	Number   float64 `json:"number"`
	Language string  `json:"language"`
	Style    string  `json:"style"`
	Mode     string  `json:"mode"`
}

// LanguagesResult is the data of the languages endpoint.
type LanguagesResult struct {
	Default   string   `json:"default"`
	Languages []string `json:"languages"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status, detail := errorToDetail(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}
	writeJSON(w, status, Response{Error: detail})
}

// errorToDetail maps err to a status code and an envelope error. Messages of
// unexpected errors are not exposed.
func errorToDetail(err error) (int, *ErrorDetail) {
	var (
		notSupported *wordbook.ErrLanguageNotSupported
		tooLarge     *http.MaxBytesError
		bad          badRequestError
	)
	switch {
	case errors.Is(err, numwords.ErrInvalidInput):
		return http.StatusBadRequest, &ErrorDetail{Code: CodeInvalidInput, Message: err.Error()}
	case errors.As(err, &notSupported):
		return http.StatusNotFound, &ErrorDetail{Code: CodeLanguageNotSupported, Message: notSupported.Error()}
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: CodeRequestTooLarge, Message: "request body too large"}
	case errors.As(err, &bad):
		return http.StatusBadRequest, &ErrorDetail{Code: CodeBadRequest, Message: bad.Error()}
	}
	return http.StatusInternalServerError, &ErrorDetail{Code: CodeInternal, Message: http.StatusText(http.StatusInternalServerError)}
}

// badRequestError is a malformed request that never reached the converter.
type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }
