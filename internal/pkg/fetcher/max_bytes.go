package fetcher

import (
	"errors"
	"io"
	"net/http"
)

const (
	// DefaultMaxBytes 응답 본문의 기본 크기 제한입니다. (10MB)
	DefaultMaxBytes = 10 * 1024 * 1024

	// NoLimit 크기 제한을 적용하지 않습니다.
	NoLimit = -1
)

// MaxBytesFetcher 응답 본문의 크기를 제한합니다.
//
// Content-Length가 한도를 넘으면 본문을 받기 전에 실패하고, 그렇지 않으면 읽는 시점에
// 실제 바이트 수로 다시 제한합니다.
type MaxBytesFetcher struct {
	delegate Fetcher
	limit    int64
}

// NewMaxBytesFetcher limit이 NoLimit이면 delegate를 그대로, 0 이하이면 DefaultMaxBytes를 사용합니다.
func NewMaxBytesFetcher(delegate Fetcher, limit int64) Fetcher {
	if limit == NoLimit {
		return delegate
	}
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	return &MaxBytesFetcher{delegate: delegate, limit: limit}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.ContentLength > f.limit {
		drainAndCloseBody(resp.Body)
		return nil, newErrResponseBodyTooLarge(f.limit, resp.ContentLength)
	}

	if resp.Body != nil {
		resp.Body = &maxBytesReader{rc: http.MaxBytesReader(nil, resp.Body, f.limit), limit: f.limit}
	}

	return resp, nil
}

// maxBytesReader *http.MaxBytesError를 apperrors 에러로 변환합니다.
type maxBytesReader struct {
	rc    io.ReadCloser
	limit int64
}

func (r *maxBytesReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	var mbErr *http.MaxBytesError
	if err != nil && errors.As(err, &mbErr) {
		return n, newErrResponseBodyTooLarge(r.limit, 0)
	}
	return n, err
}

func (r *maxBytesReader) Close() error {
	return r.rc.Close()
}
