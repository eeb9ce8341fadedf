// Package log logrus 기반의 전역 로깅 설정과 헬퍼를 제공합니다.
//
// 서버는 main 함수 도입부에서 Setup을 한 번 호출하고, 이후 모든 패키지는
// WithComponent / WithComponentAndFields로 component 필드가 붙은 Entry를 얻어 로그를 남깁니다.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}

// WithFields logrus.WithFields의 별칭입니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithError logrus.WithError의 별칭입니다.
func WithError(err error) *Entry {
	return logrus.WithError(err)
}

// StandardLogger 전역 Logger를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 Logger의 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 Logger의 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 전역 Logger의 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 전역 Logger의 현재 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// SetDebugMode debug가 true이면 Trace, 아니면 Info 레벨로 설정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

// Info 전역 Logger로 Info 로그를 기록합니다.
func Info(args ...any) { logrus.Info(args...) }

// Warn 전역 Logger로 Warn 로그를 기록합니다.
func Warn(args ...any) { logrus.Warn(args...) }

// Error 전역 Logger로 Error 로그를 기록합니다.
func Error(args ...any) { logrus.Error(args...) }

// Fatal 전역 Logger로 Fatal 로그를 기록한 뒤 프로세스를 종료합니다.
func Fatal(args ...any) { logrus.Fatal(args...) }

// MaskSensitiveData API 키 등 민감한 값을 로그에 남길 수 있는 형태로 가립니다.
//
//	""                 -> ""
//	"abc"              -> "***"
//	"abcdefgh"         -> "abcd***"
//	"abcdefghijklmnop" -> "abcd***mnop"
func MaskSensitiveData(data string) string {
	switch {
	case data == "":
		return ""
	case len(data) <= 3:
		return "***"
	case len(data) <= 12:
		return data[:4] + "***"
	default:
		return data[:4] + "***" + data[len(data)-4:]
	}
}
