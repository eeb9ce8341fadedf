package fetcher

import (
	"net"
	"net/http"
	"time"
)

const (
	// DefaultTimeout 요청 하나의 기본 전체 제한 시간입니다.
	DefaultTimeout = 30 * time.Second

	defaultIdleConnTimeout = 90 * time.Second
	defaultMaxIdleConns    = 10
)

// HTTPFetcher 실제 네트워크 요청을 수행하는 체인의 마지막 단계입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// HTTPOptions HTTPFetcher 생성 옵션입니다.
type HTTPOptions struct {
	Timeout   time.Duration
	UserAgent string

	// Instrument 설정 시 Transport를 감쌉니다. (예: 메트릭 수집)
	Instrument func(http.RoundTripper) http.RoundTripper
}

// NewHTTPFetcher 전용 Transport를 사용하는 HTTPFetcher를 생성합니다.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var rt http.RoundTripper = newTransport()
	if opts.Instrument != nil {
		rt = opts.Instrument(rt)
	}

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: rt,
		},
		userAgent: opts.UserAgent,
	}
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          defaultMaxIdleConns,
		MaxIdleConnsPerHost:   defaultMaxIdleConns,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// Do 요청에 User-Agent가 없으면 기본값을 설정한 뒤 전송합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if h.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	return h.client.Do(req)
}

// CloseIdleConnections 유휴 커넥션을 모두 닫습니다. 서버 종료 시 호출합니다.
func (h *HTTPFetcher) CloseIdleConnections() {
	h.client.CloseIdleConnections()
}
