package middleware

import (
	"bytes"
	"testing"

	applog "github.com/its-mocha/portfolio-server/pkg/log"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoggerAdapter_Level(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level applog.Level
		want  log.Lvl
	}{
		{"Trace", applog.TraceLevel, log.DEBUG},
		{"Debug", applog.DebugLevel, log.DEBUG},
		{"Info", applog.InfoLevel, log.INFO},
		{"Warn", applog.WarnLevel, log.WARN},
		{"Error", applog.ErrorLevel, log.ERROR},
		{"Fatal", applog.FatalLevel, log.OFF},
		{"Panic", applog.PanicLevel, log.OFF},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := logrus.New()
			l.SetLevel(tt.level)
			assert.Equal(t, tt.want, Logger{l}.Level())
		})
	}
}

func TestLoggerAdapter_SetLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input log.Lvl
		want  applog.Level
	}{
		{"Debug", log.DEBUG, applog.DebugLevel},
		{"Info", log.INFO, applog.InfoLevel},
		{"Warn", log.WARN, applog.WarnLevel},
		{"Error", log.ERROR, applog.ErrorLevel},
		{"OFF는 무시", log.OFF, applog.TraceLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := logrus.New()
			l.SetLevel(applog.TraceLevel)
			Logger{l}.SetLevel(tt.input)
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestLoggerAdapter_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logrus.New()
	l.SetFormatter(&applog.JSONFormatter{})
	adapter := Logger{l}

	adapter.SetOutput(&buf)
	adapter.SetPrefix("ignored")
	adapter.SetHeader("ignored")

	assert.Same(t, &buf, adapter.Output())
	assert.Empty(t, adapter.Prefix())

	adapter.Infoj(log.JSON{"port": 3000})
	adapter.Warnf("echo: %s", "warning")

	out := buf.String()
	assert.Contains(t, out, `"port":3000`)
	assert.Contains(t, out, `"msg":"echo: warning"`)
}
