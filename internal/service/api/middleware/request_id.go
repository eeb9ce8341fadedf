package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID 요청마다 UUID v4 형식의 X-Request-ID를 부여하는 미들웨어를 반환합니다.
//
// 클라이언트가 X-Request-ID 헤더를 보낸 경우 그 값을 그대로 사용합니다.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RemoveServerHeader 응답의 Server 헤더를 비워 서버 스택 정보를 노출하지 않습니다.
func RemoveServerHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	}
}
