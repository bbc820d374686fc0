package security

import (
	"net/http"
	"strings"

	"github.com/ankit-singh26/Whiteboard-Project/global"
	"github.com/ankit-singh26/Whiteboard-Project/tools/errs"
	jwtlib "github.com/ankit-singh26/Whiteboard-Project/tools/security"
	"github.com/gin-gonic/gin"
)

// context keys; downstream handlers read the verified identity with these
const (
	CtxUserIDKey   = "userId"
	CtxUsernameKey = "username"
)

type Options struct {
	// which header carries the token
	HeaderToken               string // default "authorization"
	EnableAuthorizationBearer bool   // default true
}

func DefaultOptions() *Options {
	return &Options{
		HeaderToken:               "authorization",
		EnableAuthorizationBearer: true,
	}
}

// Middleware verifies the bearer token and stores the identity in the gin
// context. Requests without a valid token are rejected before the handler.
func Middleware(opts *Options) gin.HandlerFunc {
	if opts == nil {
		opts = DefaultOptions()
	}
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(opts.HeaderToken))
		if token == "" && opts.EnableAuthorizationBearer {
			token = strings.TrimSpace(c.GetHeader("Authorization"))
		}

		// accept Authorization: Bearer xxx; the header may carry the scheme
		// even when HeaderToken names it directly
		if opts.EnableAuthorizationBearer {
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[len("bearer "):])
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenNotExist)
			return
		}

		claims, err := jwtlib.Verify(global.JWTOptions(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenInvalid.WithDetail(err.Error()))
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}
