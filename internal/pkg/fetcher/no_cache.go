package fetcher

import "net/http"

// NoCacheFetcher 중간 캐시가 저장된 응답을 돌려주지 않도록 요청마다 캐시 우회 헤더를 설정합니다.
type NoCacheFetcher struct {
	delegate Fetcher
}

// NewNoCacheFetcher 새로운 NoCacheFetcher를 생성합니다.
func NewNoCacheFetcher(delegate Fetcher) *NoCacheFetcher {
	return &NoCacheFetcher{delegate: delegate}
}

func (f *NoCacheFetcher) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	return f.delegate.Do(req)
}
