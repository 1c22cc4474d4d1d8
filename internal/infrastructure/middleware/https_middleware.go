// Package middleware 提供可选的 HTTP 中间件
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler 将 HTTP 请求重定向到 HTTPS
// 由 tlsConfig.forceHttps 开关控制是否挂载（TLS 终结在反向代理时不需要）
func TlsHandler(host string, port int) gin.HandlerFunc {
	// 在返回闭包之前构建一次，避免每个请求重复创建
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host + ":" + strconv.Itoa(port),
	})

	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			// 中间件里不能 Fatal，记错误并终止当前请求
			zap.L().Error("TLS redirection failed", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
