package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booknest/internal/apperr"
	"booknest/internal/core/auth"
	"booknest/internal/domain"
	"booknest/internal/transport/http/response"
)

const keyIdentity = "identity"

// Authenticate 每请求执行一次：有 Bearer token 则解析并把身份挂到请求上下文；
// 没带或解析失败都放行为匿名，由后面的 RequireAuth/RequireRole 决定是否拦。
// 过期与非法分开记日志，对外表现一致
func Authenticate(j *auth.JWTer, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.Next()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(ah, "Bearer "))
		if token == "" {
			c.Next()
			return
		}
		id, err := j.Parse(token)
		if err != nil {
			if apperr.IsKind(err, apperr.KindTokenExpired) {
				l.Warn("expired token", zap.String("path", c.FullPath()))
			} else {
				l.Warn("invalid token", zap.String("path", c.FullPath()), zap.Error(err))
			}
			c.Next()
			return
		}
		c.Set(keyIdentity, id)
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(keyIdentity)
	if !ok {
		return domain.Identity{}, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

func RequireAuth(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := IdentityFrom(c); !ok {
			response.Err(c, l, apperr.Unauthenticated("authentication required"))
			return
		}
		c.Next()
	}
}

func RequireRole(role string, l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Err(c, l, apperr.Unauthenticated("authentication required"))
			return
		}
		if id.Role != role {
			response.Err(c, l, apperr.Forbidden("insufficient role"))
			return
		}
		c.Next()
	}
}
