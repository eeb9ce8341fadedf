package fetcher

import (
	"fmt"

	apperrors "github.com/its-mocha/portfolio-server/internal/pkg/errors"
)

// ErrResponseBodyTooLarge 응답 본문이 허용 크기를 넘었을 때 반환됩니다. apperrors.As로 꺼낼 수 있습니다.
type ErrResponseBodyTooLarge struct {
	Limit         int64
	ContentLength int64 // Content-Length 헤더로 판단한 경우에만 설정
}

func (e *ErrResponseBodyTooLarge) Error() string {
	if e.ContentLength > 0 {
		return fmt.Sprintf("응답 본문 크기(%d bytes)가 허용 한도(%d bytes)를 초과했습니다", e.ContentLength, e.Limit)
	}
	return fmt.Sprintf("응답 본문 크기가 허용 한도(%d bytes)를 초과했습니다", e.Limit)
}

func newErrResponseBodyTooLarge(limit, contentLength int64) error {
	return apperrors.Wrap(&ErrResponseBodyTooLarge{Limit: limit, ContentLength: contentLength}, apperrors.ExecutionFailed, "응답 본문 크기 제한 초과")
}
