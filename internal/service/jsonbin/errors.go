package jsonbin

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
)

// DefaultErrorDetails 업스트림 에러 본문에서 메시지를 얻지 못했을 때 사용하는 값입니다.
const DefaultErrorDetails = "Check API Key"

// UpstreamError JSONBin이 2xx가 아닌 상태 코드로 응답했을 때 반환됩니다.
type UpstreamError struct {
	StatusCode int
	Status     string

	// Details 업스트림 에러 본문의 message 값(JSON)입니다. 값이 없으면 DefaultErrorDetails 문자열입니다.
	Details json.RawMessage

	cause error
}

func newUpstreamError(statusCode int, status string, details json.RawMessage) *UpstreamError {
	errType := apperrors.ExecutionFailed
	if statusCode >= 500 || statusCode == http.StatusTooManyRequests {
		errType = apperrors.Unavailable
	}

	return &UpstreamError{
		StatusCode: statusCode,
		Status:     status,
		Details:    details,
		cause:      apperrors.Newf(errType, "JSONBin 요청이 실패했습니다. 상태 코드: %d", statusCode),
	}
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("JSONBin 응답 오류 (%s): %s", e.Status, e.DetailsText())
}

// Unwrap 상태 코드에 따라 ExecutionFailed 또는 Unavailable 타입의 AppError를 반환합니다.
func (e *UpstreamError) Unwrap() error { return e.cause }

// DetailsText Details를 로그용 문자열로 반환합니다. JSON 문자열이면 따옴표를 벗깁니다.
func (e *UpstreamError) DetailsText() string {
	var s string
	if err := json.Unmarshal(e.Details, &s); err == nil {
		return s
	}
	return string(e.Details)
}
