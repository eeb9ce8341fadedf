package jsonbin

import (
	"fmt"
	"os"
	"strings"

	applog "github.com/its-mocha/portfolio-server/pkg/log"
)

const (
	// DefaultBinIDEnv bin ID를 읽는 기본 환경 변수 이름입니다.
	DefaultBinIDEnv = "JSONBIN_BIN_ID"

	// DefaultMasterKeyEnv 마스터 키를 읽는 기본 환경 변수 이름입니다.
	DefaultMasterKeyEnv = "JSONBIN_MASTER_KEY"
)

// Credentials JSONBin 요청 한 건에 필요한 인증 정보입니다.
type Credentials struct {
	BinID     string
	MasterKey string
}

// LogFields 마스터 키를 마스킹한 로그 필드를 반환합니다.
func (c Credentials) LogFields() applog.Fields {
	return applog.Fields{
		"bin_id":     c.BinID,
		"master_key": applog.MaskSensitiveData(c.MasterKey),
	}
}

// CredentialSource 요청 시점의 인증 정보를 제공합니다.
type CredentialSource interface {
	Credentials() (Credentials, error)
}

// MissingCredentialsError 필요한 환경 변수가 없거나 비어 있을 때 반환됩니다.
type MissingCredentialsError struct {
	Names []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("JSONBin 인증 정보가 설정되지 않았습니다: %s", strings.Join(e.Names, ", "))
}

// EnvCredentialSource 프로세스 환경 변수에서 인증 정보를 읽습니다.
//
// 매 호출마다 환경 변수를 다시 읽으므로 재시작 없이 값이 반영됩니다.
type EnvCredentialSource struct {
	binIDEnv     string
	masterKeyEnv string

	lookupEnv func(key string) (string, bool)
}

// NewEnvCredentialSource 빈 이름은 기본 환경 변수 이름으로 대체됩니다.
func NewEnvCredentialSource(binIDEnv, masterKeyEnv string) *EnvCredentialSource {
	if binIDEnv == "" {
		binIDEnv = DefaultBinIDEnv
	}
	if masterKeyEnv == "" {
		masterKeyEnv = DefaultMasterKeyEnv
	}

	return &EnvCredentialSource{
		binIDEnv:     binIDEnv,
		masterKeyEnv: masterKeyEnv,
		lookupEnv:    os.LookupEnv,
	}
}

// Credentials 두 값이 모두 비어 있지 않을 때만 성공합니다. 값은 가공하지 않습니다.
func (s *EnvCredentialSource) Credentials() (Credentials, error) {
	binID, _ := s.lookupEnv(s.binIDEnv)
	masterKey, _ := s.lookupEnv(s.masterKeyEnv)

	var missing []string
	if binID == "" {
		missing = append(missing, s.binIDEnv)
	}
	if masterKey == "" {
		missing = append(missing, s.masterKeyEnv)
	}
	if len(missing) > 0 {
		return Credentials{}, &MissingCredentialsError{Names: missing}
	}

	return Credentials{BinID: binID, MasterKey: masterKey}, nil
}
