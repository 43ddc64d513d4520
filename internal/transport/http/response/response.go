package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"booknest/internal/apperr"
)

// Message 单错误响应体 {message}
type Message struct {
	Message string `json:"message"`
}

func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindInvalidInput, apperr.KindInvalidState:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthenticated, apperr.KindTokenInvalid, apperr.KindTokenExpired:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Err 统一出错边界：错误类别 → 状态码与响应体，服务层不碰 HTTP。
// 4xx 记 warn，5xx 记 error 且对外不泄露内部细节
func Err(c *gin.Context, l *zap.Logger, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = &apperr.Error{Kind: apperr.KindInternal, Err: err}
	}
	status := statusOf(ae.Kind)

	fields := []zap.Field{
		zap.String("path", c.FullPath()),
		zap.Int("status", status),
	}
	if status >= http.StatusInternalServerError {
		l.Error("request failed", append(fields, zap.Error(err))...)
		c.AbortWithStatusJSON(status, Message{Message: "something went wrong"})
		return
	}
	l.Warn("request rejected", append(fields, zap.String("reason", ae.Error()))...)

	if len(ae.Fields) > 0 {
		// 多字段校验错误用 {field: [messages]} 形式
		c.AbortWithStatusJSON(status, ae.Fields)
		return
	}
	c.AbortWithStatusJSON(status, Message{Message: ae.Error()})
}

// BindError gin 绑定失败 → 按字段聚合的校验错误
func BindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.InvalidInput(err.Error())
	}
	fields := map[string][]string{}
	for _, fe := range verrs {
		name := lowerFirst(fe.Field())
		fields[name] = append(fields[name], fieldMsg(fe))
	}
	return apperr.Validation(fields)
}

func fieldMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "is too short (min " + fe.Param() + ")"
	case "max":
		return "is too long (max " + fe.Param() + ")"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
