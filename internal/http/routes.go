package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of API routes mounted under /api by NewRouter.
type RouteGroup interface {
	RegisterRoutes(api *gin.RouterGroup, cfg *RouterConfig)
}
