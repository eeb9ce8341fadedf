package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기 (128KB)
	// 이 서버의 모든 엔드포인트는 요청 본문을 사용하지 않습니다.
	DefaultMaxBodySize = "128K"

	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (10초)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간 (120초)
	DefaultIdleTimeout = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간 (5초)
	ShutdownTimeout = 5 * time.Second
)

// HTTP 헤더 값 상수입니다.
const (
	// CacheControlNoStore 상태 프록시 응답에 설정하는 Cache-Control 값
	CacheControlNoStore = "no-store"
)
