package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helpers
// =============================================================================

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// =============================================================================
// Unit Tests
// =============================================================================

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"PORTFOLIO_DEBUG", "debug"},
		{"PORTFOLIO_HTTP_SERVER__LISTEN_PORT", "http_server.listen_port"},
		{"PORTFOLIO_JSONBIN__BASE_URL", "jsonbin.base_url"},
		{"PORTFOLIO_CORS__ALLOW_ORIGINS", "cors.allow_origins"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeEnvKey(tt.input), "Input: %s", tt.input)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newDefaultConfig()

	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultListenPort, cfg.HTTPServer.ListenPort)
	assert.Equal(t, DefaultJSONBinBaseURL, cfg.JSONBin.BaseURL)
	assert.Equal(t, "JSONBIN_BIN_ID", cfg.JSONBin.BinIDEnv)
	assert.Equal(t, "JSONBIN_MASTER_KEY", cfg.JSONBin.MasterKeyEnv)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	require.NoError(t, cfg.validate(), "기본 설정은 항상 유효해야 합니다")
}

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	certFile := filepath.Join(t.TempDir(), "cert.pem")
	require.NoError(t, os.WriteFile(certFile, []byte("cert"), 0o644))

	tests := []struct {
		name    string
		modify  func(c *AppConfig)
		wantErr string
	}{
		{"성공: 기본값", func(c *AppConfig) {}, ""},
		{"성공: TLS 활성화", func(c *AppConfig) {
			c.HTTPServer.TLSServer = true
			c.HTTPServer.TLSCertFile = certFile
			c.HTTPServer.TLSKeyFile = certFile
		}, ""},
		{"실패: 포트 범위 초과", func(c *AppConfig) { c.HTTPServer.ListenPort = 70000 }, "http_server.listen_port"},
		{"실패: 포트 0", func(c *AppConfig) { c.HTTPServer.ListenPort = 0 }, "1에서 65535"},
		{"실패: TLS 인증서 누락", func(c *AppConfig) { c.HTTPServer.TLSServer = true }, "tls_cert_file"},
		{"실패: TLS 인증서 파일 없음", func(c *AppConfig) {
			c.HTTPServer.TLSServer = true
			c.HTTPServer.TLSCertFile = "/nonexistent/cert.pem"
			c.HTTPServer.TLSKeyFile = certFile
		}, "찾을 수 없습니다"},
		{"실패: 요청 타임아웃 0", func(c *AppConfig) { c.HTTPServer.RequestTimeout = 0 }, "http_server.request_timeout"},
		{"실패: CORS 목록 비어있음", func(c *AppConfig) { c.CORS.AllowOrigins = nil }, "cors.allow_origins"},
		{"실패: CORS 형식 오류", func(c *AppConfig) { c.CORS.AllowOrigins = []string{"https://example.com/"} }, "CORS Origin 형식"},
		{"실패: 와일드카드와 도메인 혼용", func(c *AppConfig) { c.CORS.AllowOrigins = []string{"*", "https://example.com"} }, "와일드카드"},
		{"실패: JSONBin URL 형식 오류", func(c *AppConfig) { c.JSONBin.BaseURL = "api.jsonbin.io" }, "jsonbin.base_url"},
		{"실패: JSONBin URL 누락", func(c *AppConfig) { c.JSONBin.BaseURL = "" }, "필수 설정(jsonbin.base_url)"},
		{"실패: 환경 변수 이름 형식 오류", func(c *AppConfig) { c.JSONBin.BinIDEnv = "BIN-ID" }, "jsonbin.bin_id_env"},
		{"실패: 환경 변수 이름 중복", func(c *AppConfig) { c.JSONBin.MasterKeyEnv = c.JSONBin.BinIDEnv }, "jsonbin.master_key_env"},
		{"실패: 최대 본문 크기 0", func(c *AppConfig) { c.JSONBin.MaxBodyBytes = 0 }, "jsonbin.max_body_bytes"},
		{"실패: JSONBin 타임아웃이 요청 타임아웃 이상", func(c *AppConfig) { c.JSONBin.Timeout = c.HTTPServer.RequestTimeout }, "보다 짧아야 합니다"},
		{"실패: 음수 로그 보관 기간", func(c *AppConfig) { c.Log.MaxAge = -1 }, "log.max_age"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := newDefaultConfig()
			tt.modify(&cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	t.Run("운영 모드 기본값은 경고 발생", func(t *testing.T) {
		t.Parallel()

		cfg := newDefaultConfig()
		cfg.HTTPServer.ListenPort = 80

		warnings := cfg.VerifyRecommendations()
		require.Len(t, warnings, 3)
		assert.Contains(t, warnings[0], "시스템 예약 포트")
		assert.Contains(t, warnings[1], "CORS")
		assert.Contains(t, warnings[2], "TLS")
	})

	t.Run("권장 설정은 경고 없음", func(t *testing.T) {
		t.Parallel()

		cfg := newDefaultConfig()
		cfg.CORS.AllowOrigins = []string{"https://its-mocha.dev"}
		cfg.HTTPServer.TLSServer = true

		assert.Empty(t, cfg.VerifyRecommendations())
	})
}

// =============================================================================
// Integration Tests (파일 + 환경 변수)
// =============================================================================

func TestLoadWithFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"debug": true,
		"http_server": { "listen_port": 8443, "request_timeout": "20s" },
		"cors": { "allow_origins": ["https://its-mocha.dev"] },
		"jsonbin": { "timeout": "5s", "max_body_bytes": 1024 },
		"log": { "dir": "/var/log/portfolio", "max_age": 7 }
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 8443, cfg.HTTPServer.ListenPort)
	assert.Equal(t, 20*time.Second, cfg.HTTPServer.RequestTimeout)
	assert.Equal(t, []string{"https://its-mocha.dev"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.JSONBin.Timeout)
	assert.Equal(t, int64(1024), cfg.JSONBin.MaxBodyBytes)
	assert.Equal(t, DefaultJSONBinBaseURL, cfg.JSONBin.BaseURL, "파일에 없는 값은 기본값을 유지해야 합니다")
	assert.Equal(t, "/var/log/portfolio", cfg.Log.Dir)
	assert.Equal(t, 7, cfg.Log.MaxAge)
}

func TestLoadWithFile_EnvOverride(t *testing.T) {
	// t.Setenv는 병렬 테스트와 함께 사용할 수 없습니다.
	path := writeConfigFile(t, `{ "http_server": { "listen_port": 8080 } }`)

	t.Setenv("PORTFOLIO_HTTP_SERVER__LISTEN_PORT", "9090")
	t.Setenv("PORTFOLIO_JSONBIN__BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("PORTFOLIO_CORS__ALLOW_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("PORTFOLIO_DEBUG", "true")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.ListenPort)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.JSONBin.BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.Debug)
}

func TestLoadWithFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{
			name:     "실패: 파일 없음",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.json") },
			wantType: apperrors.NotFound,
			wantMsg:  "설정 파일을 찾을 수 없습니다",
		},
		{
			name:     "실패: JSON 문법 오류",
			path:     func(t *testing.T) string { return writeConfigFile(t, `{ "debug": `) },
			wantType: apperrors.InvalidInput,
			wantMsg:  "설정 파일 로드 중 오류",
		},
		{
			name:     "실패: 알 수 없는 필드",
			path:     func(t *testing.T) string { return writeConfigFile(t, `{ "notify_api": {} }`) },
			wantType: apperrors.InvalidInput,
			wantMsg:  "구조체로 변환하는데 실패",
		},
		{
			name:     "실패: 잘못된 Duration",
			path:     func(t *testing.T) string { return writeConfigFile(t, `{ "jsonbin": { "timeout": "soon" } }`) },
			wantType: apperrors.InvalidInput,
			wantMsg:  "구조체로 변환하는데 실패",
		},
		{
			name:     "실패: 검증 실패",
			path:     func(t *testing.T) string { return writeConfigFile(t, `{ "http_server": { "listen_port": 0 } }`) },
			wantType: apperrors.InvalidInput,
			wantMsg:  "유효성 검증에 실패",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithFile(tt.path(t))

			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.wantType), "error=%v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, newDefaultConfig(), *cfg)
}
