package apperr

import "errors"

// Kind 业务错误类别，由 response 层统一映射到 HTTP 状态码
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
	KindInvalidState
	KindConflict
	KindUnauthenticated
	KindTokenInvalid
	KindTokenExpired
	KindForbidden
)

type Error struct {
	Kind   Kind
	Msg    string
	Err    error
	Fields map[string][]string // 多字段校验错误（可选）
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }
func InvalidInput(msg string) error { return &Error{Kind: KindInvalidInput, Msg: msg} }
func InvalidState(msg string) error { return &Error{Kind: KindInvalidState, Msg: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Msg: msg} }
func Unauthenticated(msg string) error {
	return &Error{Kind: KindUnauthenticated, Msg: msg}
}
func TokenInvalid(err error) error {
	return &Error{Kind: KindTokenInvalid, Msg: "invalid token", Err: err}
}
func TokenExpired(err error) error {
	return &Error{Kind: KindTokenExpired, Msg: "token expired", Err: err}
}
func Forbidden(msg string) error { return &Error{Kind: KindForbidden, Msg: msg} }
func Internal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// Validation 多字段校验失败（{field: [messages]} 响应体）
func Validation(fields map[string][]string) error {
	return &Error{Kind: KindInvalidInput, Msg: "validation failed", Fields: fields}
}

// KindOf 取错误类别；非 *Error 一律按 Internal 处理
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

func IsKind(err error, k Kind) bool { return KindOf(err) == k }
