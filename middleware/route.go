package middleware

import (
	midsec "github.com/ankit-singh26/Whiteboard-Project/middleware/security"
	"github.com/gin-gonic/gin"
)

// RouteOpt configures per-route behavior.
type RouteOpt struct {
	IsAuth bool
}

// POST registers a POST route, inserting the auth middleware when asked.
func POST(r gin.IRoutes, path string, handler gin.HandlerFunc, opt RouteOpt) {
	if opt.IsAuth {
		r.POST(path,
			midsec.Middleware(midsec.DefaultOptions()),
			handler,
		)
	} else {
		r.POST(path, handler)
	}
}

// GET registers a GET route, inserting the auth middleware when asked.
func GET(r gin.IRoutes, path string, handler gin.HandlerFunc, opt RouteOpt) {
	if opt.IsAuth {
		r.GET(path,
			midsec.Middleware(midsec.DefaultOptions()),
			handler,
		)
	} else {
		r.GET(path, handler)
	}
}
