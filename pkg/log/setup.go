package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	setupOnce     sync.Once
	setupCloser   io.Closer
	setupErr      error
	consoleOutput io.Writer = os.Stdout
)

// Setup 전역 Logger를 초기화합니다. 프로세스 생명주기 동안 한 번만 실행되며,
// 이후 호출은 최초 호출의 결과를 그대로 반환합니다.
//
// 반환된 Closer는 main 함수에서 defer로 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		setupCloser, setupErr = setup(opts)
	})

	return setupCloser, setupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	newFile := func(suffix string) *lumberjack.Logger {
		return newRotatingFile(dir, opts, suffix)
	}

	mainFile := newFile("")
	r := &router{
		main:      mainFile,
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}
	c := &closer{router: r, files: []io.Closer{mainFile}}

	if opts.EnableCriticalLog {
		f := newFile("critical")
		r.critical = f
		c.files = append(c.files, f)
	}
	if opts.EnableVerboseLog {
		f := newFile("verbose")
		r.verbose = f
		c.files = append(c.files, f)
	}
	if opts.EnableConsoleLog {
		r.console = consoleOutput
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}

	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)
	logrus.SetFormatter(silentFormatter{})
	logrus.SetOutput(io.Discard)
	logrus.AddHook(r)

	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// newRotatingFile <dir>/<name>[.<suffix>].log 경로의 lumberjack Logger를 생성합니다.
// 파일은 첫 기록 시점에 열립니다.
func newRotatingFile(dir string, opts Options, suffix string) *lumberjack.Logger {
	name := opts.Name
	if suffix != "" {
		name += "." + suffix
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+".log"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     opts.MaxAge,
		LocalTime:  true,
	}
}
