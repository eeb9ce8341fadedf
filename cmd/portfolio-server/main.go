package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/its-mocha/portfolio-server/internal/config"
	"github.com/its-mocha/portfolio-server/internal/pkg/version"
	"github.com/its-mocha/portfolio-server/internal/service/api"
	applog "github.com/its-mocha/portfolio-server/pkg/log"
	"github.com/spf13/cobra"
)

// @title Portfolio Server API
// @version 1.0.0
// @description 포트폴리오 사이트가 사용하는 서버 API입니다.
// @description
// @description ## 주요 기능
// @description - 홈 서버 Pi-hole 상태 조회 (JSONBin에 저장된 최신 레코드를 그대로 전달)
// @description - 헬스체크 및 빌드 정보 조회
// @description
// @description JSONBin 인증 정보는 서버 환경 변수로만 관리되며 브라우저에 노출되지 않습니다.

// @contact.name its-mocha
// @contact.url https://github.com/its-mocha

// @license.name MIT

// @BasePath /

const (
	banner = `
  ____            _    __       _ _
 |  _ \ ___  _ __| |_ / _| ___ | (_) ___
 | |_) / _ \| '__| __| |_ / _ \| | |/ _ \
 |  __/ (_) | |  | |_|  _| (_) | | | (_) |
 |_|   \___/|_|   \__|_|  \___/|_|_|\___/   %s
--------------------------------------------------------------------------------
`
)

const component = "main"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "포트폴리오 사이트용 API 서버",
		Args:  cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", fmt.Sprintf("설정 파일 경로 (미지정 시 %s, 없으면 기본값과 환경 변수 사용)", config.DefaultFilename))

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig 경로가 지정되면 해당 파일을 반드시 읽고, 아니면 기본 설정 파일을 선택적으로 읽습니다.
func loadConfig(configFile string) (*config.AppConfig, error) {
	if configFile == "" {
		return config.Load()
	}
	return config.LoadWithFile(configFile)
}

// newLogOptions 실행 모드에 맞는 로그 설정에 설정 파일의 로그 항목을 반영합니다.
func newLogOptions(appConfig *config.AppConfig) applog.Options {
	var opts applog.Options
	if appConfig.Debug {
		opts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		opts = applog.NewProductionOptions(config.AppName)
		opts.MaxAge = appConfig.Log.MaxAge
	}
	opts.Dir = appConfig.Log.Dir

	return opts
}

func run(ctx context.Context, configFile string) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		return err
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newLogOptions(appConfig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		return err
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	fields := buildInfo.LogFields()
	fields["env"] = map[bool]string{true: "development", false: "production"}[appConfig.Debug]
	applog.WithComponentAndFields(component, fields).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	apiService := api.NewService(appConfig, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("서비스 초기화 실패")

		cancel()
		serviceStopWG.Wait()

		return err
	}

	applog.WithComponent(component).Info("서버 가동 완료")

	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(component).Info("Shutdown signal received")

	case <-apiService.Done():
		// HTTP 서버가 먼저 종료된 경우 (예: 포트 사용 중) 실패로 반환합니다.
		serviceStopWG.Wait()

		if err := apiService.Err(); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("API 서비스가 종료되어 서버를 중단합니다")

			return err
		}
	}

	cancel()
	serviceStopWG.Wait()

	return nil
}
