// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service Start로 시작하고 ctx 취소로 종료되는 서비스입니다.
//
// Start는 즉시 반환해야 하며, 서비스가 완전히 종료되면 wg.Done()을 정확히 한 번 호출합니다.
type Service interface {
	Start(ctx context.Context, wg *sync.WaitGroup) error
}
