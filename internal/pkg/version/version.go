// Package version 빌드 시점에 주입된 버전 정보와 실행 환경 정보를 제공합니다.
//
// 값은 -ldflags로 주입합니다.
//
//	go build -ldflags "-X github.com/its-mocha/portfolio-server/internal/pkg/version.appVersion=v1.2.0 \
//	  -X github.com/its-mocha/portfolio-server/internal/pkg/version.gitCommitHash=$(git rev-parse HEAD)"
//
// 주입되지 않은 값은 debug.ReadBuildInfo의 VCS 정보로 보강합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"

	applog "github.com/its-mocha/portfolio-server/pkg/log"
)

const unknown = "unknown"

// -ldflags 주입 대상입니다. 직접 참조하지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
	buildNumber   = ""
)

var (
	current       atomic.Pointer[Info]
	readBuildInfo = debug.ReadBuildInfo
)

func init() {
	info := Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}

	if bi, ok := readBuildInfo(); ok {
		info = mergeBuildInfo(info, bi)
	}

	Set(withDefaults(info))
}

// Info 빌드 및 실행 환경 정보입니다. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 빌드 정보를 반환합니다.
func Get() Info {
	if info := current.Load(); info != nil {
		return *info
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0"}
}

// Set 빌드 정보를 교체합니다. 테스트와 초기화 과정에서만 사용합니다.
func Set(info Info) {
	current.Store(&info)
}

// mergeBuildInfo ldflags로 채워지지 않은 커밋, 빌드 시간, 버전을 VCS 메타데이터로 채웁니다.
func mergeBuildInfo(info Info, bi *debug.BuildInfo) Info {
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" || info.Commit == "none" || info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" || info.BuildDate == unknown {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			if s.Value == "true" {
				info.DirtyBuild = true
			}
		}
	}

	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	return info
}

// withDefaults 실행 환경 값을 채우고 남은 빈 필드를 unknown으로 설정합니다.
func withDefaults(info Info) Info {
	if info.GoVersion == "" {
		info.GoVersion = runtime.Version()
	}
	if info.OS == "" {
		info.OS = runtime.GOOS
	}
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}
	if info.Version == "" {
		info.Version = unknown
	}
	if info.Commit == "" || info.Commit == "none" {
		info.Commit = unknown
	}
	return info
}

// UserAgent 외부 API 호출 시 사용할 User-Agent 값을 반환합니다. (예: portfolio-server/v1.2.0)
func (i Info) UserAgent(appName string) string {
	return appName + "/" + i.Version
}

// LogFields 구조적 로깅용 필드를 반환합니다.
func (i Info) LogFields() applog.Fields {
	return applog.Fields{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.2.0+dirty (commit: f25b8bf, build: 12, ...)" 형식으로 요약합니다.
func (i Info) String() string {
	if i.Version == "" {
		return unknown
	}

	v := i.Version
	if i.DirtyBuild {
		v += "+dirty"
	}

	var parts []string
	add := func(label, value string) {
		if value != "" && value != unknown {
			parts = append(parts, fmt.Sprintf("%s: %s", label, value))
		}
	}

	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	add("commit", commit)
	add("build", i.BuildNumber)
	add("date", i.BuildDate)
	add("go_version", i.GoVersion)
	add("os", i.OS)
	add("arch", i.Arch)

	if len(parts) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(parts, ", "))
}
