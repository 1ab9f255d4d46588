package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches Gin to release mode in production. The environment
// affects verbosity only, never behavior.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
