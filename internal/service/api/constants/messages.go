package constants

// 클라이언트에게 반환되는 메시지 상수입니다.
const (
	// ------------------------------------------------------------------------------------------------
	// 일반 HTTP 에러 (전역 에러 핸들러)
	// ------------------------------------------------------------------------------------------------

	// 404 Not Found
	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	// 500 Internal Server Error
	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	// ------------------------------------------------------------------------------------------------
	// 상태 프록시 (포트폴리오 프런트엔드가 그대로 사용하는 영문 메시지)
	// ------------------------------------------------------------------------------------------------

	// ErrMsgStatusConfigMissing 인증 정보 환경 변수가 없을 때의 error 값
	ErrMsgStatusConfigMissing = "Server configuration missing. Check the JSONBin environment variables."

	// ErrMsgStatusUpstream 업스트림 오류 응답일 때의 error 값
	ErrMsgStatusUpstream = "Failed to fetch from JSONBin"

	// ErrMsgStatusInternal 예기치 못한 실패일 때의 error 값
	ErrMsgStatusInternal = "Internal Server Error"
)
