// Package metrics 프록시 요청 결과와 업스트림 호출 지연 시간을 Prometheus 형식으로 수집합니다.
//
// 전역 DefaultRegisterer 대신 인스턴스마다 독립된 Registry를 사용하므로 테스트에서
// 여러 인스턴스를 만들어도 등록 충돌이 발생하지 않습니다.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "portfolio"
	subsystem = "status_proxy"
)

// Outcome 프록시 요청 한 건의 처리 결과입니다.
type Outcome string

const (
	OutcomeConfigMissing Outcome = "config_missing"
	OutcomeUpstreamError Outcome = "upstream_error"
	OutcomeInternalError Outcome = "internal_error"
	OutcomeSuccess       Outcome = "success"
)

// Outcomes 수집 가능한 모든 Outcome 값입니다.
var Outcomes = []Outcome{OutcomeConfigMissing, OutcomeUpstreamError, OutcomeInternalError, OutcomeSuccess}

// Metrics 상태 프록시의 Prometheus 메트릭 묶음입니다.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
}

// New 새로운 Registry에 메트릭을 등록하여 반환합니다.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	m := &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "The total number of status proxy requests by outcome",
			},
			[]string{"outcome"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "upstream_duration_seconds",
				Help:      "Duration of upstream JSONBin requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code"},
		),
	}

	// 스크레이프 결과에 항상 나타나도록 레이블 조합을 미리 생성합니다.
	for _, o := range Outcomes {
		m.requestsTotal.WithLabelValues(string(o))
	}

	return m
}

// ObserveOutcome 프록시 요청 결과를 1 증가시킵니다. nil 수신자는 아무 것도 하지 않습니다.
func (m *Metrics) ObserveOutcome(o Outcome) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(string(o)).Inc()
}

// RequestsTotal 수집된 카운터입니다. (테스트에서 testutil.ToFloat64로 조회)
func (m *Metrics) RequestsTotal(o Outcome) prometheus.Counter {
	return m.requestsTotal.WithLabelValues(string(o))
}

// InstrumentRoundTripper 업스트림 호출의 소요 시간을 상태 코드별로 기록하는 RoundTripper를 반환합니다.
func (m *Metrics) InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper {
	if m == nil {
		return next
	}
	return promhttp.InstrumentRoundTripperDuration(m.upstreamDuration, next)
}

// Handler 등록된 메트릭을 노출하는 HTTP 핸들러를 반환합니다.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry:          m.registry,
		EnableOpenMetrics: false,
	})
}

// Registry 내부 Registry입니다.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
