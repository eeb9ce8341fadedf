package fetcher

import (
	"net/http"
	"time"
)

// Config New로 체인을 조립할 때 사용하는 설정입니다.
type Config struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string

	// Instrument 설정 시 HTTP Transport를 감쌉니다.
	Instrument func(http.RoundTripper) http.RoundTripper
}

// Client 조립된 체인과 가장 안쪽 HTTPFetcher를 함께 보관합니다.
type Client struct {
	Fetcher
	http *HTTPFetcher
}

// New Logging → NoCache → MaxBytes → HTTP 순서의 체인을 생성합니다.
func New(cfg Config) *Client {
	h := NewHTTPFetcher(HTTPOptions{
		Timeout:    cfg.Timeout,
		UserAgent:  cfg.UserAgent,
		Instrument: cfg.Instrument,
	})

	var f Fetcher = h
	f = NewMaxBytesFetcher(f, cfg.MaxBodyBytes)
	f = NewNoCacheFetcher(f)
	f = NewLoggingFetcher(f)

	return &Client{Fetcher: f, http: h}
}

// Close 유휴 커넥션을 정리합니다.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
