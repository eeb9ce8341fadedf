package log

import (
	"fmt"
	"os"
)

// Options Setup에 전달하는 로깅 설정입니다.
type Options struct {
	Name  string // 로그 파일명 접두어
	Dir   string // 로그 디렉토리 (빈 값이면 "logs")
	Level Level  // 0이면 Info

	MaxAge     int // 보관 일수 (0: 삭제 안 함)
	MaxSizeMB  int // 파일당 최대 크기 (0: 100MB)
	MaxBackups int // 백업 파일 수 (0: 20개)

	EnableCriticalLog bool // ERROR 이상을 <name>.critical.log 에 별도 기록
	EnableVerboseLog  bool // DEBUG 이하를 <name>.verbose.log 로 분리
	EnableConsoleLog  bool // 표준 출력에도 기록

	ReportCaller     bool   // 호출 위치(함수:라인) 기록
	CallerPathPrefix string // 호출 위치에서 잘라낼 모듈 경로 접두어
}

// Validate 설정값을 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	for name, v := range map[string]int{"MaxAge": opts.MaxAge, "MaxSizeMB": opts.MaxSizeMB, "MaxBackups": opts.MaxBackups} {
		if v < 0 {
			return fmt.Errorf("%s는 0 이상이어야 합니다: %d", name, v)
		}
	}

	return nil
}
