// Package jsonbin JSONBin v3 API에서 bin의 최신 레코드를 조회하는 클라이언트를 제공합니다.
//
// 인증 정보(bin ID, 마스터 키)는 설정 파일이 아닌 프로세스 환경 변수에서 요청 시점마다 읽습니다.
// 클라이언트는 응답을 캐시하거나 재시도하지 않습니다.
package jsonbin
