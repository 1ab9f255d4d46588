package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	httpapi "github.com/aishwaryaDel/tesa-ai-template/internal/api/http"
	"github.com/aishwaryaDel/tesa-ai-template/internal/api/http/middleware"
	ucshttp "github.com/aishwaryaDel/tesa-ai-template/internal/usecases/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	UseCases    ucshttp.Lifecycle
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(rate.Limit(50), 100))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	ucsHandler := ucshttp.NewHandler(dep.UseCases)
	ucsHandler.Register(api.Group("/use-cases"))

	return r
}
