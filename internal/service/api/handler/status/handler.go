// Package status 포트폴리오 페이지가 사용하는 Pi-hole 상태 프록시 엔드포인트를 제공합니다.
//
// JSONBin bin의 최신 레코드를 서버 측 인증 정보로 조회하여 record 값만 그대로 전달합니다.
// 브라우저는 마스터 키를 알 수 없으며, 응답은 어느 계층에서도 캐시되지 않습니다.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
	"github.com/its-mocha/portfolio-server/internal/pkg/metrics"
	"github.com/its-mocha/portfolio-server/internal/service/api/constants"
	statusmodel "github.com/its-mocha/portfolio-server/internal/service/api/model/status"
	"github.com/its-mocha/portfolio-server/internal/service/jsonbin"
	applog "github.com/its-mocha/portfolio-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// RecordFetcher bin의 최신 레코드를 조회합니다. *jsonbin.Client가 구현합니다.
type RecordFetcher interface {
	LatestRecord(ctx context.Context, creds jsonbin.Credentials) (json.RawMessage, error)
}

// Handler 상태 프록시 핸들러
type Handler struct {
	credentials jsonbin.CredentialSource
	records     RecordFetcher

	metrics *metrics.Metrics
}

// New Handler 인스턴스를 생성합니다. m이 nil이면 메트릭을 수집하지 않습니다.
func New(credentials jsonbin.CredentialSource, records RecordFetcher, m *metrics.Metrics) *Handler {
	if credentials == nil {
		panic(constants.PanicMsgCredentialSourceRequired)
	}
	if records == nil {
		panic(constants.PanicMsgRecordFetcherRequired)
	}

	return &Handler{
		credentials: credentials,
		records:     records,

		metrics: m,
	}
}

// GetStatusHandler godoc
// @Summary Pi-hole 상태 레코드 조회
// @Description JSONBin bin의 최신 레코드(record)를 가공 없이 반환합니다.
// @Description 요청마다 JSONBin을 한 번 호출하며 캐시와 재시도는 없습니다.
// @Description
// @Description 실패 응답:
// @Description - 인증 정보 환경 변수 누락: 500 {error}
// @Description - JSONBin 오류 응답: JSONBin과 같은 상태 코드 {error, details}
// @Description - 네트워크 오류 등 예기치 못한 실패: 500 {error, message}
// @Tags Status
// @Produce json
// @Success 200 {object} object "JSONBin record 값"
// @Failure 401 {object} statusmodel.UpstreamErrorResponse "JSONBin 인증 실패 (예시)"
// @Failure 404 {object} statusmodel.UpstreamErrorResponse "bin 없음 (예시)"
// @Failure 500 {object} statusmodel.InternalErrorResponse "설정 누락 또는 예기치 못한 실패"
// @Router /api/pihole [get]
func (h *Handler) GetStatusHandler(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, constants.CacheControlNoStore)

	creds, err := h.credentials.Credentials()
	if err != nil {
		applog.WithComponentAndFields(constants.ComponentStatusHandler, applog.Fields{
			"error":      err,
			"request_id": requestID(c),
		}).Error(constants.LogMsgStatusConfigMissing)

		h.metrics.ObserveOutcome(metrics.OutcomeConfigMissing)

		return c.JSON(http.StatusInternalServerError, statusmodel.ConfigMissingResponse{
			Error: constants.ErrMsgStatusConfigMissing,
		})
	}

	record, err := h.records.LatestRecord(c.Request().Context(), creds)
	if err != nil {
		return h.respondError(c, creds, err)
	}

	h.metrics.ObserveOutcome(metrics.OutcomeSuccess)

	applog.WithComponentAndFields(constants.ComponentStatusHandler, applog.Fields{
		"bin_id":     creds.BinID,
		"bytes":      len(record),
		"request_id": requestID(c),
	}).Debug(constants.LogMsgStatusFetched)

	return c.JSONBlob(http.StatusOK, record)
}

func (h *Handler) respondError(c echo.Context, creds jsonbin.Credentials, err error) error {
	fields := creds.LogFields()
	fields["request_id"] = requestID(c)

	var upErr *jsonbin.UpstreamError
	if errors.As(err, &upErr) {
		fields["status_code"] = upErr.StatusCode
		fields["details"] = upErr.DetailsText()
		applog.WithComponentAndFields(constants.ComponentStatusHandler, fields).Error(constants.LogMsgStatusUpstreamError)

		h.metrics.ObserveOutcome(metrics.OutcomeUpstreamError)

		return c.JSON(upErr.StatusCode, statusmodel.UpstreamErrorResponse{
			Error:   constants.ErrMsgStatusUpstream,
			Details: upErr.Details,
		})
	}

	fields["error"] = err
	fields["error_type"] = apperrors.UnderlyingType(err).String()
	applog.WithComponentAndFields(constants.ComponentStatusHandler, fields).Error(constants.LogMsgStatusInternalError)

	h.metrics.ObserveOutcome(metrics.OutcomeInternalError)

	return c.JSON(http.StatusInternalServerError, statusmodel.InternalErrorResponse{
		Error:   constants.ErrMsgStatusInternal,
		Message: failureMessage(err),
	})
}

// failureMessage 응답 본문의 message 값을 만듭니다.
//
// 전송 실패는 *url.Error에서 URL을 뺀 원인(예: "dial tcp 127.0.0.1:443: connect: connection refused")을,
// AppError가 원인이면 분류 접두어 없는 메시지를, 그 밖에는 최종 원인의 에러 문자열을 사용합니다.
func failureMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}

	root := apperrors.RootCause(err)

	var appErr *apperrors.AppError
	if errors.As(root, &appErr) {
		return appErr.Message()
	}

	return root.Error()
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
