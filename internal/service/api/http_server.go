package api

import (
	"net/http"
	"time"

	"github.com/its-mocha/portfolio-server/internal/service/api/constants"
	"github.com/its-mocha/portfolio-server/internal/service/api/httputil"
	appmiddleware "github.com/its-mocha/portfolio-server/internal/service/api/middleware"
	applog "github.com/its-mocha/portfolio-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	// hstsMaxAge TLS 사용 시 Strict-Transport-Security max-age (1년)
	hstsMaxAge = 31536000
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS Strict-Transport-Security 헤더 설정 여부 (TLS 사용 시)
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery: 다른 미들웨어의 panic까지 복구하도록 가장 먼저 적용
//  2. RequestID: 로그에 request_id를 남기기 위해 로깅보다 먼저 적용
//  3. RemoveServerHeader: Server 헤더 제거
//  4. HTTPLogger: 이후 단계에서 거부된 요청(413, 503)도 기록
//  5. BodyLimit: 요청 본문 크기 제한 (128KB, 초과 시 413)
//  6. Timeout: 요청 처리 시간 제한 (초과 시 503)
//  7. CORS: 허용된 Origin의 GET 요청과 Preflight 처리
//  8. Secure: X-Content-Type-Options 등 보안 헤더
//
// 라우트는 포함되지 않으며 RegisterRoutes로 별도 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.RemoveServerHeader())
	e.Use(appmiddleware.HTTPLogger())
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
