package log

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// silentFormatter 전역 Logger 자체의 포맷팅을 생략합니다. 실제 포맷팅은 router가 수행합니다.
type silentFormatter struct{}

func (silentFormatter) Format(*Entry) ([]byte, error) {
	return nil, nil
}

// newTextFormatter 파일/콘솔 출력에 사용할 TextFormatter를 생성합니다.
func newTextFormatter(prefix string) *TextFormatter {
	return &TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if prefix != "" {
				if cut, ok := strings.CutPrefix(function, prefix); ok {
					function = "..." + cut
				}
			}
			return function, ""
		},
	}
}
