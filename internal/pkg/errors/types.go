package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 성격을 분류합니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 디스크, 네트워크 등 인프라 수준의 장애
	System

	// InvalidInput 설정값이나 입력값의 검증 실패
	InvalidInput

	// NotFound 요청한 리소스가 없음
	NotFound

	// ExecutionFailed 외부 API 호출 등 작업 수행 실패
	ExecutionFailed

	// ParsingFailed JSON 디코딩 등 데이터 해석 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 외부 서비스에 연결할 수 없음
	Unavailable
)
