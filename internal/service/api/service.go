package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/its-mocha/portfolio-server/docs"
	"github.com/its-mocha/portfolio-server/internal/config"
	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
	"github.com/its-mocha/portfolio-server/internal/pkg/fetcher"
	"github.com/its-mocha/portfolio-server/internal/pkg/metrics"
	"github.com/its-mocha/portfolio-server/internal/pkg/version"
	"github.com/its-mocha/portfolio-server/internal/service"
	"github.com/its-mocha/portfolio-server/internal/service/api/constants"
	"github.com/its-mocha/portfolio-server/internal/service/api/handler/status"
	"github.com/its-mocha/portfolio-server/internal/service/api/handler/system"
	"github.com/its-mocha/portfolio-server/internal/service/jsonbin"
	applog "github.com/its-mocha/portfolio-server/pkg/log"
	"github.com/labstack/echo/v4"
)

var _ service.Service = (*Service)(nil)

// Service 포트폴리오 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Echo 기반 HTTP/HTTPS 서버를 고루틴에서 실행하며, Start에 전달된 context가 취소되면
// 5초 제한 시간 안에 Graceful Shutdown을 수행합니다. 종료 시 JSONBin 클라이언트의
// 유휴 커넥션도 정리합니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	credentials jsonbin.CredentialSource
	fetcher     *fetcher.Client
	metrics     *metrics.Metrics

	running   bool
	runningMu sync.Mutex

	// done 실행 중인 서비스가 종료되면 닫힙니다. exitErr는 HTTP 서버가 먼저 종료된 경우의 원인입니다.
	done    chan struct{}
	exitErr error
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	m := metrics.New()

	return &Service{
		appConfig: appConfig,

		buildInfo: buildInfo,

		credentials: jsonbin.NewEnvCredentialSource(appConfig.JSONBin.BinIDEnv, appConfig.JSONBin.MasterKeyEnv),
		fetcher: fetcher.New(fetcher.Config{
			Timeout:      appConfig.JSONBin.Timeout,
			MaxBodyBytes: appConfig.JSONBin.MaxBodyBytes,
			UserAgent:    buildInfo.UserAgent(config.AppName),
			Instrument:   m.InstrumentRoundTripper,
		}),
		metrics: m,

		done: make(chan struct{}),
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다. 서비스가 완전히 종료되면
// serviceStopWG.Done()이 호출됩니다. 이미 실행 중이면 경고만 남기고 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true
	s.done = make(chan struct{})
	s.exitErr = nil

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// Done 현재 실행이 끝나면 닫히는 채널을 반환합니다.
//
// 종료 신호 없이 닫혔다면 HTTP 서버가 먼저 종료된 것이며, 원인은 Err로 확인합니다.
func (s *Service) Done() <-chan struct{} {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.done
}

// Err HTTP 서버가 예기치 않게 종료된 경우 그 원인을 반환합니다. 정상 종료이거나 실행 중이면 nil입니다.
func (s *Service) Err() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.exitErr
}

// Running 서비스 실행 여부를 반환합니다.
func (s *Service) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.running
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan error, 1)
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러, 미들웨어 체인, 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	client := jsonbin.NewClient(jsonbin.ClientConfig{BaseURL: s.appConfig.JSONBin.BaseURL}, s.fetcher)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		EnableHSTS:     s.appConfig.HTTPServer.TLSServer,
		AllowOrigins:   s.appConfig.CORS.AllowOrigins,
		RequestTimeout: s.appConfig.HTTPServer.RequestTimeout,
	})

	RegisterRoutes(e, Handlers{
		System:  system.New(s.credentials, s.buildInfo),
		Status:  status.New(s.credentials, client, s.metrics),
		Metrics: s.metrics.Handler(),
	})

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다. 서버가 종료되면 종료 원인을 done으로 보냅니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan<- error) {
	cfg := s.appConfig.HTTPServer
	address := fmt.Sprintf(":%d", cfg.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": cfg.ListenPort,
		"tls":  cfg.TLSServer,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if cfg.TLSServer {
		err = e.StartTLS(address, cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)

	done <- err
}

// handleServerError 정상 종료(http.ErrServerClosed)가 아닌 에러만 Error 레벨로 기록합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTPServer.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버 조기 종료를 기다린 뒤 상태를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone <-chan error) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case err := <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup(newErrUnexpectedExit(err))

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup(nil)
}

// newErrUnexpectedExit 종료 신호 없이 HTTP 서버가 멈춘 원인을 Unavailable 에러로 감쌉니다.
func newErrUnexpectedExit(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return apperrors.New(apperrors.Unavailable, constants.LogMsgServiceUnexpectedExit)
	}
	return apperrors.Wrap(err, apperrors.Unavailable, constants.LogMsgServiceUnexpectedExit)
}

func (s *Service) cleanup(exitErr error) {
	_ = s.fetcher.Close()

	s.runningMu.Lock()
	s.running = false
	s.exitErr = exitErr
	close(s.done)
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
