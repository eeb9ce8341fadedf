// Package validation 설정값 검증에 사용하는 네트워크 관련 검증 함수를 제공합니다.
//
// internal/config의 validator 커스텀 태그(cors_origin, http_url)가 이 패키지를 호출합니다.
package validation
