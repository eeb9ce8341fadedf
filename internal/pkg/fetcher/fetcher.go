// Package fetcher 외부 HTTP API 호출에 사용하는 데코레이터 기반 클라이언트를 제공합니다.
//
// 각 기능(본문 크기 제한, 캐시 우회 헤더, 로깅)은 Fetcher를 감싸는 독립된 구현체이며
// New가 설정에 따라 이들을 하나의 체인으로 조립합니다.
//
//	LoggingFetcher → NoCacheFetcher → MaxBytesFetcher → HTTPFetcher
//
// 체인은 재시도를 수행하지 않습니다. 실패한 요청은 호출자에게 그대로 전달됩니다.
package fetcher

import (
	"context"
	"io"
	"net/http"
)

// component Fetcher 로깅용 컴포넌트 이름
const component = "fetcher"

// Fetcher HTTP 요청을 수행합니다.
//
// 에러 없이 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Func 일반 함수를 Fetcher로 사용하기 위한 어댑터입니다.
type Func func(req *http.Request) (*http.Response, error)

// Do f(req)를 호출합니다.
func (f Func) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Get 지정된 URL로 GET 요청을 전송합니다. header의 값은 요청 헤더에 그대로 설정됩니다.
//
// 에러가 발생하면 응답 Body를 비우고 닫은 뒤 nil 응답을 반환합니다.
func Get(ctx context.Context, f Fetcher, url string, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		req.Header[k] = append([]string(nil), vs...)
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	return resp, nil
}

// ReadAll 응답 Body를 모두 읽고 닫습니다.
func ReadAll(resp *http.Response) ([]byte, error) {
	defer drainAndCloseBody(resp.Body)
	return io.ReadAll(resp.Body)
}
