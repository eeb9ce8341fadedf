package jsonbin

import (
	"encoding/json"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

var (
	// ErrNullBody 성공 응답의 본문이 null일 때 반환됩니다.
	ErrNullBody = apperrors.New(apperrors.ParsingFailed, "JSONBin 응답 본문이 null입니다")

	// ErrRecordMissing 성공 응답에 record 필드가 없을 때 반환됩니다. (객체가 아닌 본문 포함)
	ErrRecordMissing = apperrors.New(apperrors.ParsingFailed, "JSONBin 응답에 record 필드가 없습니다")
)

var defaultDetailsJSON = json.RawMessage(`"` + DefaultErrorDetails + `"`)

// extractDetails 에러 응답 본문의 message 값을 JSON으로 반환합니다.
//
// 본문이 JSON이 아니면 빈 객체로 간주합니다. message가 없거나 거짓 값(null, false, 0, "")이면
// DefaultErrorDetails를 사용합니다. 그 밖의 값은 타입을 유지한 채 그대로 전달합니다.
func extractDetails(body []byte) json.RawMessage {
	if !gjson.ValidBytes(body) {
		return defaultDetailsJSON
	}

	msg := gjson.GetBytes(body, "message")
	if !truthy(msg) {
		return defaultDetailsJSON
	}

	if msg.Type == gjson.String {
		// 이스케이프를 정규화합니다.
		b, err := json.Marshal(msg.Str)
		if err != nil {
			return defaultDetailsJSON
		}
		return b
	}

	return json.RawMessage(msg.Raw)
}

func truthy(r gjson.Result) bool {
	if !r.Exists() {
		return false
	}

	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		// NaN은 JSON으로 표현되지 않으므로 0만 검사합니다.
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return true
	}
}

// extractRecord 성공 응답 본문의 record 값을 반환합니다. record가 null이면 "null"을 그대로 반환합니다.
//
// 본문이 올바른 JSON이 아니면 encoding/json의 구문 에러를, 본문이 null이면 ErrNullBody를,
// record 필드가 없으면 ErrRecordMissing을 반환합니다.
func extractRecord(body []byte) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	parsed := gjson.ParseBytes(body)
	if parsed.Type == gjson.Null {
		return nil, ErrNullBody
	}

	rec := parsed.Get("record")
	if !rec.Exists() {
		return nil, ErrRecordMissing
	}

	return json.RawMessage(rec.Raw), nil
}
