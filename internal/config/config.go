// Package config 서버 설정을 로드하고 검증합니다.
//
// 우선순위(낮음 → 높음): 기본값 → JSON 설정 파일 → PORTFOLIO_ 접두사 환경 변수
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
)

const (
	// AppName 애플리케이션 식별자입니다. 로그 파일명과 User-Agent에 사용됩니다.
	AppName = "portfolio-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않을 때 탐색하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: PORTFOLIO_HTTP_SERVER__LISTEN_PORT=8080 -> http_server.listen_port
	EnvPrefix = "PORTFOLIO_"
)

// 기본값
const (
	DefaultListenPort     = 3000
	DefaultRequestTimeout = 60 * time.Second

	DefaultJSONBinBaseURL      = "https://api.jsonbin.io"
	DefaultJSONBinBinIDEnv     = "JSONBIN_BIN_ID"
	DefaultJSONBinMasterKeyEnv = "JSONBIN_MASTER_KEY"
	DefaultJSONBinTimeout      = 30 * time.Second
	DefaultJSONBinMaxBodyBytes = 2 * 1024 * 1024

	DefaultLogMaxAge = 30
)

func newDefaultConfig() AppConfig {
	return AppConfig{
		HTTPServer: HTTPServerConfig{
			ListenPort:     DefaultListenPort,
			RequestTimeout: DefaultRequestTimeout,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
		JSONBin: JSONBinConfig{
			BaseURL:      DefaultJSONBinBaseURL,
			BinIDEnv:     DefaultJSONBinBinIDEnv,
			MasterKeyEnv: DefaultJSONBinMasterKeyEnv,
			Timeout:      DefaultJSONBinTimeout,
			MaxBodyBytes: DefaultJSONBinMaxBodyBytes,
		},
		Log: LogConfig{
			MaxAge: DefaultLogMaxAge,
		},
	}
}

// Load 기본 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 기본값과 환경 변수만 사용합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
			// 기본값으로 계속 진행
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var cfg AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := cfg.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &cfg, nil
}

// normalizeEnvKey PORTFOLIO_JSONBIN__BASE_URL -> jsonbin.base_url
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
