package config

import (
	"fmt"
	"slices"
	"time"
)

// AppConfig 서버 설정의 최상위 구조체입니다.
//
// JSONBin Bin ID와 Master Key는 이 구조체에 포함되지 않습니다. 요청마다 JSONBin 항목에
// 지정된 이름의 환경 변수를 직접 조회합니다.
type AppConfig struct {
	Debug      bool             `json:"debug"`
	HTTPServer HTTPServerConfig `json:"http_server"`
	CORS       CORSConfig       `json:"cors"`
	JSONBin    JSONBinConfig    `json:"jsonbin"`
	Log        LogConfig        `json:"log"`
}

// HTTPServerConfig API 서버의 포트, TLS, 요청 타임아웃 설정입니다.
type HTTPServerConfig struct {
	ListenPort     int           `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer      bool          `json:"tls_server"`
	TLSCertFile    string        `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile     string        `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	RequestTimeout time.Duration `json:"request_timeout" validate:"gt=0"`
}

// CORSConfig 브라우저 교차 출처 요청 허용 목록입니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"min=1,dive,cors_origin"`
}

// JSONBinConfig 상태 레코드를 조회할 JSONBin 연동 설정입니다.
type JSONBinConfig struct {
	BaseURL      string        `json:"base_url" validate:"required,base_url"`
	BinIDEnv     string        `json:"bin_id_env" validate:"required,env_name"`
	MasterKeyEnv string        `json:"master_key_env" validate:"required,env_name,nefield=BinIDEnv"`
	Timeout      time.Duration `json:"timeout" validate:"gt=0"`
	MaxBodyBytes int64         `json:"max_body_bytes" validate:"gt=0"`
}

// LogConfig 로그 파일 위치와 보관 기간입니다.
type LogConfig struct {
	Dir    string `json:"dir"`
	MaxAge int    `json:"max_age" validate:"min=0"`
}

// validate 구조체 태그 검증 후 태그로 표현할 수 없는 규칙을 확인합니다.
func (c *AppConfig) validate() error {
	if err := checkStruct(c); err != nil {
		return err
	}

	if len(c.CORS.AllowOrigins) > 1 && slices.Contains(c.CORS.AllowOrigins, "*") {
		return newInvalidInput("와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}

	if c.JSONBin.Timeout >= c.HTTPServer.RequestTimeout {
		return newInvalidInput(fmt.Sprintf("JSONBin 요청 타임아웃(jsonbin.timeout: %s)은 API 요청 타임아웃(http_server.request_timeout: %s)보다 짧아야 합니다", c.JSONBin.Timeout, c.HTTPServer.RequestTimeout))
	}

	return nil
}

// VerifyRecommendations 오류는 아니지만 운영 시 주의가 필요한 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}

	if slices.Contains(c.CORS.AllowOrigins, "*") && !c.Debug {
		warnings = append(warnings, "운영 모드에서 모든 출처(*)의 CORS 요청을 허용하고 있습니다. 포트폴리오 도메인만 허용하도록 설정하는 것을 권장합니다")
	}

	if !c.HTTPServer.TLSServer && !c.Debug {
		warnings = append(warnings, "TLS가 비활성화되어 있습니다. 리버스 프록시에서 HTTPS를 종료하지 않는다면 tls_server 설정을 활성화하세요")
	}

	return warnings
}
