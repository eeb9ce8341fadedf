package fetcher

import (
	"net/http"
	"time"

	applog "github.com/its-mocha/portfolio-server/pkg/log"
)

// LoggingFetcher 요청 메서드, 마스킹된 URL과 헤더, 응답 상태, 소요 시간을 기록합니다.
//
// 성공(응답 수신)은 Debug, 전송 실패는 Warn 레벨로 남깁니다. 상태 코드의 성공 여부는
// 호출자가 판단하므로 여기서는 구분하지 않습니다.
type LoggingFetcher struct {
	delegate Fetcher
}

// NewLoggingFetcher 새로운 LoggingFetcher를 생성합니다.
func NewLoggingFetcher(delegate Fetcher) *LoggingFetcher {
	return &LoggingFetcher{delegate: delegate}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := f.delegate.Do(req)

	fields := applog.Fields{
		"method":   req.Method,
		"url":      redactURL(req.URL),
		"headers":  redactHeaders(req.Header),
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status"] = resp.Status
		fields["status_code"] = resp.StatusCode
	}

	entry := applog.WithComponentAndFields(component, fields).WithContext(req.Context())
	if err != nil {
		entry.WithError(err).Warn("HTTP 요청 실패: 응답을 받지 못했습니다")
		return resp, err
	}

	entry.Debug("HTTP 요청 완료")

	return resp, nil
}
