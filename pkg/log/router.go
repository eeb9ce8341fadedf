package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// router 로그 레벨에 따라 Entry를 여러 Writer로 분배하는 logrus Hook입니다.
//
//   - console:  모든 레벨
//   - critical: ERROR 이상
//   - verbose:  DEBUG 이하 (verbose가 설정되면 main에는 기록하지 않음)
//   - main:     그 외 모든 레벨
type router struct {
	main     io.Writer
	critical io.Writer
	verbose  io.Writer
	console  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (r *router) Levels() []Level {
	return AllLevels
}

func (r *router) Fire(entry *Entry) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil
	}

	msg, err := r.formatter.Format(entry)
	if err != nil {
		return err
	}

	if r.console != nil {
		if _, err := r.console.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 콘솔 출력 실패: %v\n", err)
		}
	}

	var firstErr error
	write := func(w io.Writer, name string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] %s 로그 파일 쓰기 실패: %v\n", name, err)
		}
	}

	if entry.Level <= ErrorLevel {
		write(r.critical, "critical")
	}

	if entry.Level >= DebugLevel && r.verbose != nil {
		write(r.verbose, "verbose")
		return firstErr
	}

	write(r.main, "main")

	return firstErr
}

// Close 이후의 Fire 호출을 모두 무시하도록 전환합니다. 진행 중인 기록이 끝날 때까지 대기합니다.
func (r *router) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	return nil
}
