// Package mocks fetcher.Fetcher의 테스트용 구현체를 제공합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"

	"github.com/its-mocha/portfolio-server/internal/pkg/fetcher"
	"github.com/stretchr/testify/mock"
)

var _ fetcher.Fetcher = (*MockFetcher)(nil)

// MockFetcher testify/mock 기반 Fetcher입니다.
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher 새로운 MockFetcher를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewResponse 지정한 본문과 상태 코드를 가진 응답을 생성합니다. ContentLength는 -1(알 수 없음)입니다.
func NewResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode:    statusCode,
		Status:        http.StatusText(statusCode),
		Header:        make(http.Header),
		Body:          io.NopCloser(bytes.NewBufferString(body)),
		ContentLength: -1,
	}
}

// NewJSONResponse Content-Type이 application/json인 응답을 생성합니다.
func NewJSONResponse(statusCode int, body string) *http.Response {
	resp := NewResponse(statusCode, body)
	resp.Header.Set("Content-Type", "application/json")
	return resp
}
