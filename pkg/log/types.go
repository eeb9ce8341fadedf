package log

import "github.com/sirupsen/logrus"

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	PanicLevel Level = logrus.PanicLevel
	FatalLevel Level = logrus.FatalLevel
	ErrorLevel Level = logrus.ErrorLevel
	WarnLevel  Level = logrus.WarnLevel
	InfoLevel  Level = logrus.InfoLevel
	DebugLevel Level = logrus.DebugLevel
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

type (
	// Fields logrus.Fields의 별칭입니다.
	Fields = logrus.Fields

	// Entry logrus.Entry의 별칭입니다.
	Entry = logrus.Entry

	// Logger logrus.Logger의 별칭입니다.
	Logger = logrus.Logger

	// Formatter logrus.Formatter의 별칭입니다.
	Formatter = logrus.Formatter

	// TextFormatter logrus.TextFormatter의 별칭입니다.
	TextFormatter = logrus.TextFormatter

	// JSONFormatter logrus.JSONFormatter의 별칭입니다.
	JSONFormatter = logrus.JSONFormatter
)

// ParseLevel 문자열을 로그 레벨로 변환합니다.
func ParseLevel(lvl string) (Level, error) {
	return logrus.ParseLevel(lvl)
}
