package errs

import "net/http"

// Error codes grouped by concern: 10xx generic, 11xx accounts, 12xx tokens,
// 13xx rooms, 15xx internal.
const (
	ArgsError               = 1001
	UserExistsError         = 1101
	InvalidCredentialsError = 1102
	TokenNotExistError      = 1201
	TokenInvalidError       = 1202
	TokenExpiredError       = 1203
	RoomNotFoundError       = 1301
	ServerInternalError     = 1500
)

var (
	ErrArgs               = NewCodeError(ArgsError, "invalid request arguments")
	ErrUserExists         = NewCodeError(UserExistsError, "user already exists")
	ErrInvalidCredentials = NewCodeError(InvalidCredentialsError, "invalid credentials")
	ErrTokenNotExist      = NewCodeError(TokenNotExistError, "no token provided")
	ErrTokenInvalid       = NewCodeError(TokenInvalidError, "invalid token")
	ErrTokenExpired       = NewCodeError(TokenExpiredError, "token expired")
	ErrRoomNotFound       = NewCodeError(RoomNotFoundError, "room not found")
	ErrInternal           = NewCodeError(ServerInternalError, "server internal error")
)

// HTTPStatus maps err to the response status and the CodeError body to
// serialize. Unknown errors collapse to ErrInternal without leaking detail.
func HTTPStatus(err error) (int, CodeError) {
	ce, ok := AsCodeError(err)
	if !ok {
		return http.StatusInternalServerError, ErrInternal
	}
	switch ce.Code {
	case ArgsError, UserExistsError:
		return http.StatusBadRequest, ce
	case InvalidCredentialsError, TokenNotExistError, TokenInvalidError, TokenExpiredError:
		return http.StatusUnauthorized, ce
	case RoomNotFoundError:
		return http.StatusNotFound, ce
	default:
		return http.StatusInternalServerError, ce
	}
}
