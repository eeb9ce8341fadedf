// Package status 상태 프록시(/api/pihole) 응답 모델을 정의합니다.
//
// 성공 응답은 JSONBin 레코드를 가공 없이 그대로 반환하므로 별도 모델이 없습니다.
package status

import "encoding/json"

// ConfigMissingResponse 인증 정보 환경 변수가 없을 때의 응답 (500)
type ConfigMissingResponse struct {
	Error string `json:"error" example:"Server configuration missing. Check the JSONBin environment variables."`
}

// UpstreamErrorResponse JSONBin이 오류 상태 코드로 응답했을 때의 응답 (상태 코드는 업스트림과 동일)
type UpstreamErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch from JSONBin"`

	// Details 업스트림 에러 본문의 message 값. 없으면 "Check API Key"
	Details json.RawMessage `json:"details" swaggertype:"string" example:"Invalid X-Master-Key provided"`
}

// InternalErrorResponse 네트워크 오류, 잘못된 응답 등 예기치 못한 실패 시의 응답 (500)
type InternalErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Message string `json:"message" example:"connection refused"`
}
