package jsonbin_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
	"github.com/its-mocha/portfolio-server/internal/pkg/fetcher"
	"github.com/its-mocha/portfolio-server/internal/service/jsonbin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = jsonbin.Credentials{BinID: "65f0c0ffee", MasterKey: "$2a$10$master"}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*jsonbin.Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	f := fetcher.New(fetcher.Config{Timeout: 2 * time.Second, MaxBodyBytes: 1024})
	t.Cleanup(func() { _ = f.Close() })

	return jsonbin.NewClient(jsonbin.ClientConfig{BaseURL: srv.URL + "/"}, f), &calls
}

func TestClient_LatestRecord_Request(t *testing.T) {
	t.Parallel()

	var got *http.Request
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = io.WriteString(w, `{"record":{}}`)
	})

	_, err := c.LatestRecord(context.Background(), testCreds)
	require.NoError(t, err)

	require.Equal(t, int32(1), calls.Load())
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/v3/b/65f0c0ffee/latest", got.URL.Path)
	assert.Equal(t, "$2a$10$master", got.Header.Get("X-Master-Key"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "no-cache, no-store", got.Header.Get("Cache-Control"))
}

func TestClient_LatestRecord_PathEscape(t *testing.T) {
	t.Parallel()

	var rawPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawPath = r.URL.EscapedPath()
		_, _ = io.WriteString(w, `{"record":{}}`)
	})

	_, err := c.LatestRecord(context.Background(), jsonbin.Credentials{BinID: "a/b?c", MasterKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "/v3/b/a%2Fb%3Fc/latest", rawPath)
}

func TestClient_LatestRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantRecord string
		wantErr    error
		wantStatus int
		wantDetail string
		wantType   apperrors.ErrorType
	}{
		{
			name:       "성공: record 언래핑",
			status:     http.StatusOK,
			body:       `{"record":{"status":"enabled","queries":1234},"metadata":{"id":"x"}}`,
			wantRecord: `{"status":"enabled","queries":1234}`,
		},
		{
			name:       "성공: record가 null",
			status:     http.StatusOK,
			body:       `{"record":null}`,
			wantRecord: `null`,
		},
		{
			name:     "실패: record 없음",
			status:   http.StatusOK,
			body:     `{"metadata":{}}`,
			wantType: apperrors.ParsingFailed,
			wantErr:  jsonbin.ErrRecordMissing,
		},
		{
			name:     "실패: null 본문",
			status:   http.StatusOK,
			body:     `null`,
			wantType: apperrors.ParsingFailed,
			wantErr:  jsonbin.ErrNullBody,
		},
		{
			name:     "실패: 배열 본문",
			status:   http.StatusOK,
			body:     `[{"record":{}}]`,
			wantType: apperrors.ParsingFailed,
			wantErr:  jsonbin.ErrRecordMissing,
		},
		{
			name:       "실패: 401 메시지 전달",
			status:     http.StatusUnauthorized,
			body:       `{"message":"bad key"}`,
			wantStatus: http.StatusUnauthorized,
			wantDetail: `"bad key"`,
			wantType:   apperrors.ExecutionFailed,
		},
		{
			name:       "실패: 404 비 JSON 본문",
			status:     http.StatusNotFound,
			body:       `Not Found`,
			wantStatus: http.StatusNotFound,
			wantDetail: `"Check API Key"`,
			wantType:   apperrors.ExecutionFailed,
		},
		{
			name:       "실패: 503 Unavailable",
			status:     http.StatusServiceUnavailable,
			body:       `{}`,
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: `"Check API Key"`,
			wantType:   apperrors.Unavailable,
		},
		{
			name:     "실패: 성공 응답의 잘못된 JSON",
			status:   http.StatusOK,
			body:     `{"record":`,
			wantType: apperrors.ParsingFailed,
		},
		{
			name:     "실패: 본문 크기 초과",
			status:   http.StatusOK,
			body:     `{"record":"` + string(make([]byte, 2048)) + `"}`,
			wantType: apperrors.Unavailable,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			rec, err := c.LatestRecord(context.Background(), testCreds)

			switch {
			case tt.wantStatus != 0:
				var upErr *jsonbin.UpstreamError
				require.ErrorAs(t, err, &upErr)
				assert.Equal(t, tt.wantStatus, upErr.StatusCode)
				assert.JSONEq(t, tt.wantDetail, string(upErr.Details))
				assert.True(t, apperrors.Is(err, tt.wantType))
			case tt.wantType != apperrors.Unknown:
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, tt.wantType), "error=%v", err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Nil(t, rec)
			default:
				require.NoError(t, err)
				assert.JSONEq(t, tt.wantRecord, string(rec))
			}
		})
	}
}

func TestClient_LatestRecord_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	f := fetcher.New(fetcher.Config{Timeout: time.Second})
	defer f.Close()

	_, err := jsonbin.NewClient(jsonbin.ClientConfig{BaseURL: baseURL}, f).LatestRecord(context.Background(), testCreds)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Unavailable))
	assert.Contains(t, apperrors.RootCause(err).Error(), "connection refused")
}

func TestUpstreamError(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid X-Master-Key"}`)
	})

	_, err := c.LatestRecord(context.Background(), testCreds)

	var upErr *jsonbin.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "Invalid X-Master-Key", upErr.DetailsText())
	assert.Contains(t, upErr.Error(), "401 Unauthorized")
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	t.Parallel()

	var gotURL string
	f := fetcher.Func(func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(`{"record":1}`)), Header: http.Header{}}, nil
	})

	rec, err := jsonbin.NewClient(jsonbin.ClientConfig{}, f).LatestRecord(context.Background(), testCreds)

	require.NoError(t, err)
	assert.Equal(t, "1", string(rec))
	assert.Equal(t, "https://api.jsonbin.io/v3/b/65f0c0ffee/latest", gotURL)
}
