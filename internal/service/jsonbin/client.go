package jsonbin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
	"github.com/its-mocha/portfolio-server/internal/pkg/fetcher"
)

// DefaultBaseURL JSONBin API의 기본 주소입니다.
const DefaultBaseURL = "https://api.jsonbin.io"

// ClientConfig Client 생성 설정입니다.
type ClientConfig struct {
	// BaseURL 비어 있으면 DefaultBaseURL을 사용합니다.
	BaseURL string
}

// Client JSONBin v3 API 클라이언트입니다. 여러 고루틴에서 동시에 사용할 수 있습니다.
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
}

// NewClient 새로운 Client를 생성합니다.
func NewClient(cfg ClientConfig, f fetcher.Fetcher) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		fetcher: f,
	}
}

// LatestRecord bin의 최신 레코드를 조회하여 record 값을 그대로 반환합니다.
//
// 반환되는 에러는 다음 중 하나입니다.
//   - *UpstreamError: JSONBin이 2xx가 아닌 상태 코드로 응답
//   - apperrors.Unavailable: 요청 전송 또는 응답 수신 실패
//   - apperrors.ParsingFailed: 성공 응답의 본문이 올바른 JSON이 아님
//
// 성공 응답에 record가 없으면 (nil, nil)을 반환합니다.
func (c *Client) LatestRecord(ctx context.Context, creds Credentials) (json.RawMessage, error) {
	header := http.Header{}
	header.Set("X-Master-Key", creds.MasterKey)
	header.Set("Content-Type", "application/json")

	resp, err := fetcher.Get(ctx, c.fetcher, c.latestURL(creds.BinID), header)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "JSONBin 요청을 전송하지 못했습니다")
	}

	body, readErr := fetcher.ReadAll(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 에러 본문을 읽지 못한 경우에도 빈 객체로 간주하고 진행합니다.
		if readErr != nil {
			body = nil
		}
		return nil, newUpstreamError(resp.StatusCode, resp.Status, extractDetails(body))
	}

	if readErr != nil {
		return nil, apperrors.Wrap(readErr, apperrors.Unavailable, "JSONBin 응답 본문을 읽지 못했습니다")
	}

	record, err := extractRecord(body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "JSONBin 응답을 해석하지 못했습니다")
	}

	return record, nil
}

func (c *Client) latestURL(binID string) string {
	return c.baseURL + "/v3/b/" + url.PathEscape(binID) + "/latest"
}
