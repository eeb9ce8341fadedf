package validation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin 'scheme://host[:port]' 형식의 Origin인지 검증합니다. "*"는 허용합니다.
//
// 경로, 후행 슬래시, 쿼리, Fragment, UserInfo를 포함하면 유효하지 않습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	switch {
	case origin == "*":
		return nil
	case origin == "":
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	case strings.HasSuffix(origin, "/"):
		return fmt.Errorf("CORS Origin 포맷 오류: 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := parseHTTPURL(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin %w", err)
	}
	if u.Path != "" {
		return fmt.Errorf("CORS Origin 포맷 오류: 경로(Path)를 포함할 수 없습니다 (input=%q)", origin)
	}

	return nil
}

// ValidateBaseURL 외부 API 호출에 사용할 기준 URL을 검증합니다.
// http(s) 스키마와 호스트가 필요하며 경로는 허용하지만 쿼리와 Fragment는 허용하지 않습니다.
func ValidateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("기준 URL은 비어있을 수 없습니다")
	}

	if _, err := parseHTTPURL(raw); err != nil {
		return fmt.Errorf("기준 URL %w", err)
	}

	return nil
}

// parseHTTPURL 스키마, 호스트, 포트를 검증한 뒤 파싱 결과를 반환합니다.
func parseHTTPURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("파싱 실패: 유효한 URL 형식이 아닙니다 (input=%q): %w", raw, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return nil, fmt.Errorf("스키마 오류: 'http' 또는 'https'만 허용됩니다 (input=%q)", raw)
	case u.RawQuery != "" || u.ForceQuery:
		return nil, fmt.Errorf("포맷 오류: 쿼리 파라미터를 포함할 수 없습니다 (input=%q)", raw)
	case u.Fragment != "":
		return nil, fmt.Errorf("포맷 오류: URL Fragment(#)를 포함할 수 없습니다 (input=%q)", raw)
	case u.User != nil:
		return nil, fmt.Errorf("포맷 오류: 사용자 자격 증명(UserInfo)을 포함할 수 없습니다 (input=%q)", raw)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("포트 오류: 포트 번호가 유효하지 않습니다 (input=%q, port=%s)", raw, p)
		}
		if err := ValidatePort(port); err != nil {
			return nil, fmt.Errorf("포트 오류: %w (input=%q)", err, raw)
		}
	}

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("포맷 오류: 호스트(Host) 정보가 누락되었습니다 (input=%q)", raw)
	}
	if err := ValidateHostname(host); err != nil {
		return nil, fmt.Errorf("호스트 오류: %w", err)
	}

	return u, nil
}
