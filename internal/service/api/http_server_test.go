package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/its-mocha/portfolio-server/internal/service/api/constants"
	"github.com/its-mocha/portfolio-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// captureGlobalLogs 전역 로거에 테스트 Hook을 연결합니다. 전역 상태를 변경하므로 병렬 실행하지 않습니다.
func captureGlobalLogs(t *testing.T) *test.Hook {
	t.Helper()

	hook := test.NewGlobal()
	originalLevel := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)

	t.Cleanup(func() {
		logrus.SetLevel(originalLevel)
		logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	})

	return hook
}

func findEntry(hook *test.Hook, msg string) *logrus.Entry {
	for _, entry := range hook.AllEntries() {
		if entry.Message == msg {
			return entry
		}
	}
	return nil
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =============================================================================
// Configuration Tests
// =============================================================================

func TestNewHTTPServer_Configuration(t *testing.T) {
	tests := []struct {
		name        string
		config      HTTPServerConfig
		expectDebug bool
	}{
		{
			name:        "Debug 모드 활성화",
			config:      HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}},
			expectDebug: true,
		},
		{
			name:        "Debug 모드 비활성화",
			config:      HTTPServerConfig{Debug: false, AllowOrigins: []string{"https://its-mocha.dev"}},
			expectDebug: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(tt.config)

			require.NotNil(t, e)
			assert.Equal(t, tt.expectDebug, e.Debug)
			assert.True(t, e.HideBanner, "배너는 항상 숨겨야 합니다")
			assert.True(t, e.HidePort, "포트 출력은 항상 숨겨야 합니다")
			assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
			assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
			require.NotNil(t, e.Logger)
		})
	}
}

// =============================================================================
// Middleware Tests
// =============================================================================

func TestNewHTTPServer_CORSMiddleware(t *testing.T) {
	tests := []struct {
		name              string
		allowOrigins      []string
		requestOrigin     string
		requestMethod     string
		expectStatus      int
		expectAllowOrigin string
	}{
		{
			name:              "성공: Wildcard Origin Preflight",
			allowOrigins:      []string{"*"},
			requestOrigin:     "https://example.com",
			requestMethod:     http.MethodOptions,
			expectStatus:      http.StatusNoContent,
			expectAllowOrigin: "*",
		},
		{
			name:              "성공: 허용된 Origin GET",
			allowOrigins:      []string{"https://its-mocha.dev"},
			requestOrigin:     "https://its-mocha.dev",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "https://its-mocha.dev",
		},
		{
			name:              "실패: 허용되지 않은 Origin GET",
			allowOrigins:      []string{"https://its-mocha.dev"},
			requestOrigin:     "https://evil.example",
			requestMethod:     http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(HTTPServerConfig{AllowOrigins: tt.allowOrigins})
			e.GET("/cors", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

			req := httptest.NewRequest(tt.requestMethod, "/cors", nil)
			req.Header.Set(echo.HeaderOrigin, tt.requestOrigin)
			if tt.requestMethod == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
			}

			rec := serve(e, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
			if tt.requestMethod == http.MethodOptions {
				allowMethods := rec.Header().Get(echo.HeaderAccessControlAllowMethods)
				assert.Contains(t, allowMethods, http.MethodGet)
				assert.NotContains(t, allowMethods, http.MethodPost, "읽기 전용 API는 POST를 허용하지 않습니다")
			}
		})
	}
}

func TestNewHTTPServer_StandardHeaders(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/test", nil))

	tests := []struct {
		name   string
		header string
		expect string
	}{
		{name: "X-XSS-Protection", header: echo.HeaderXXSSProtection, expect: "1; mode=block"},
		{name: "X-Content-Type-Options", header: echo.HeaderXContentTypeOptions, expect: "nosniff"},
		{name: "X-Frame-Options", header: echo.HeaderXFrameOptions, expect: "SAMEORIGIN"},
		{name: "Server 헤더 제거", header: echo.HeaderServer, expect: ""},
		{name: "HSTS 미설정 (TLS 비활성화)", header: echo.HeaderStrictTransportSecurity, expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, rec.Header().Get(tt.header))
		})
	}

	t.Run("Request ID는 UUID 형식", func(t *testing.T) {
		requestID := rec.Header().Get(echo.HeaderXRequestID)
		assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, requestID)
	})
}

func TestNewHTTPServer_HSTS(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, EnableHSTS: true})
	e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(echo.HeaderXForwardedProto, "https")

	rec := serve(e, req)

	assert.Equal(t, "max-age=31536000; includeSubdomains", rec.Header().Get(echo.HeaderStrictTransportSecurity))
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.POST("/upload", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	t.Run("성공: 제한 이하", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("a", 1024)))
		assert.Equal(t, http.StatusNoContent, serve(e, req).Code)
	})

	t.Run("실패: 128KB 초과", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(strings.Repeat("a", 129*1024)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, serve(e, req).Code)
	})
}

func TestNewHTTPServer_RequestTimeout(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}, RequestTimeout: 50 * time.Millisecond})
	e.GET("/slow", func(c echo.Context) error {
		select {
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		case <-time.After(2 * time.Second):
			return c.String(http.StatusOK, "too late")
		}
	})

	start := time.Now()
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Less(t, time.Since(start), time.Second, "요청 컨텍스트가 타임아웃으로 취소되어야 합니다")
}

func TestNewHTTPServer_RequestTimeout_Default(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

	var deadline time.Time
	var ok bool
	e.GET("/deadline", func(c echo.Context) error {
		deadline, ok = c.Request().Context().Deadline()
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/deadline", nil).WithContext(context.Background())
	serve(e, req)

	require.True(t, ok, "요청 컨텍스트에 Deadline이 설정되어야 합니다")
	assert.WithinDuration(t, time.Now().Add(constants.DefaultRequestTimeout), deadline, 5*time.Second)
}

func TestNewHTTPServer_NotFound(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.ResultCode)
	assert.Equal(t, constants.ErrMsgNotFound, body.Message)
}

// =============================================================================
// Logging Middleware Tests
// =============================================================================

func TestNewHTTPServer_PanicRecovery(t *testing.T) {
	hook := captureGlobalLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/panic", func(c echo.Context) error {
		panic("intentional panic")
	})

	var rec *httptest.ResponseRecorder
	assert.NotPanics(t, func() {
		rec = serve(e, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entry := findEntry(hook, constants.LogMsgPanicRecovered)
	require.NotNil(t, entry, "panic 복구 로그가 기록되어야 합니다")
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Contains(t, entry.Data["error"].(error).Error(), "intentional panic")
	assert.NotEmpty(t, entry.Data["request_id"], "RequestID 미들웨어가 먼저 적용되어야 합니다")
}

func TestNewHTTPServer_HTTPLogger(t *testing.T) {
	hook := captureGlobalLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/log-test", func(c echo.Context) error { return c.String(http.StatusOK, "success") })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/log-test?master_key=supersecretvalue", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	entry := findEntry(hook, constants.LogMsgHTTPRequest)
	require.NotNil(t, entry, "HTTP 요청 로그가 기록되어야 합니다")
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, "/log-test", entry.Data["path"])
	assert.NotContains(t, entry.Data["uri"], "supersecretvalue", "쿼리 파라미터의 민감 정보는 마스킹되어야 합니다")
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), entry.Data["request_id"])
}
