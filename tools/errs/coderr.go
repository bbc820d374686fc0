package errs

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CodeError is the unit of error reporting across the HTTP surface: a stable
// numeric code, a user-facing message and an optional detail string carried
// back to the client as JSON.
type CodeError struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Detail string `json:"detail,omitempty"`
}

func NewCodeError(code int, msg string) CodeError {
	return CodeError{Code: code, Msg: msg}
}

func (e CodeError) Error() string {
	v := make([]string, 0, 3)
	v = append(v, strconv.Itoa(e.Code), e.Msg)
	if e.Detail != "" {
		v = append(v, e.Detail)
	}
	return strings.Join(v, " ")
}

func (e CodeError) WithDetail(detail string) CodeError {
	d := detail
	if e.Detail != "" {
		d = e.Detail + ", " + detail
	}
	return CodeError{Code: e.Code, Msg: e.Msg, Detail: d}
}

// Wrap attaches a call stack so the failure site survives the trip up to the
// handler that logs it.
func (e CodeError) Wrap() error {
	return errors.WithStack(e)
}

func (e CodeError) WrapMsg(msg string) error {
	return errors.WithStack(e.WithDetail(msg))
}

// Is matches by code, so errors.Is(err, ErrRoomNotFound) works no matter how
// many detail strings were attached along the way.
func (e CodeError) Is(err error) bool {
	var ce CodeError
	if !errors.As(err, &ce) {
		return false
	}
	return e.Code == ce.Code
}

// AsCodeError extracts the CodeError from anywhere in err's chain.
func AsCodeError(err error) (CodeError, bool) {
	var ce CodeError
	ok := errors.As(err, &ce)
	return ce, ok
}

func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(err)
}

func WrapMsg(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

func New(msg string) error {
	return errors.New(msg)
}
