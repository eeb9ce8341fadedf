package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
	"github.com/its-mocha/portfolio-server/pkg/validation"
)

// envNameRegex POSIX 환경 변수 이름 형식입니다.
var envNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var validate = newValidator()

// newValidator 검증 에러에 JSON 필드명을 사용하고 커스텀 태그를 등록한 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, fn := range map[string]validator.Func{
		"cors_origin": func(fl validator.FieldLevel) bool { return validation.ValidateCORSOrigin(fl.Field().String()) == nil },
		"base_url":    func(fl validator.FieldLevel) bool { return validation.ValidateBaseURL(fl.Field().String()) == nil },
		"env_name":    func(fl validator.FieldLevel) bool { return envNameRegex.MatchString(fl.Field().String()) },
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

// checkStruct 구조체를 검증하고 첫 번째 실패 항목을 사용자 친화적인 메시지로 변환합니다.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return newInvalidInput(describe(fieldErrs[0]))
}

// describe 검증 실패 항목을 설정 파일 경로(예: jsonbin.base_url) 기준의 메시지로 변환합니다.
func describe(fe validator.FieldError) string {
	path := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("필수 설정(%s)이 누락되었습니다", path)
	case "required_if":
		return fmt.Sprintf("TLS 서버 활성화 시 %s 설정은 필수입니다", path)
	case "file":
		return fmt.Sprintf("지정된 파일(%s)을 찾을 수 없습니다: '%v'", path, fe.Value())
	case "min", "max":
		if path == "http_server.listen_port" {
			return "웹 서버 포트(http_server.listen_port)는 1에서 65535 사이의 값이어야 합니다"
		}
		if path == "cors.allow_origins" {
			return "CORS 허용 도메인(cors.allow_origins) 목록이 비어있습니다"
		}
		return fmt.Sprintf("%s 설정값이 허용 범위를 벗어났습니다: '%v' (조건: %s=%s)", path, fe.Value(), fe.Tag(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s 설정값은 0보다 커야 합니다: '%v'", path, fe.Value())
	case "cors_origin":
		return fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	case "base_url":
		return fmt.Sprintf("JSONBin 기준 URL(%s) 형식이 올바르지 않습니다: '%v' (예: https://api.jsonbin.io)", path, fe.Value())
	case "env_name":
		return fmt.Sprintf("%s 값은 유효한 환경 변수 이름이어야 합니다: '%v'", path, fe.Value())
	case "nefield":
		return fmt.Sprintf("%s 값은 Bin ID 환경 변수 이름과 달라야 합니다: '%v'", path, fe.Value())
	}

	return fmt.Sprintf("%s 설정이 올바르지 않습니다 (조건: %s)", path, fe.Tag())
}

// fieldPath "AppConfig.jsonbin.base_url" 형태의 Namespace에서 루트 구조체 이름을 제거합니다.
// 슬라이스 원소는 "cors.allow_origins[0]" 형태가 되므로 인덱스도 제거합니다.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		path = fe.Field()
	}
	if i := strings.IndexByte(path, '['); i != -1 {
		path = path[:i]
	}
	return path
}

func newInvalidInput(message string) error {
	return apperrors.New(apperrors.InvalidInput, message)
}
