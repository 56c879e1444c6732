package http_init

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api"

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	root   []Controller
	rg     *gin.RouterGroup
	rootRg *gin.RouterGroup
	engine *gin.Engine
}

func NewControllerPool(allowedOrigins []string) *ControllerPool {
	engine := gin.Default() // ! Change on NGINX setup
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rg := engine.Group(apiPrefix)
	rootRg := engine.Group("")
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		root:   make([]Controller, 0, 2),
		rg:     rg,
		rootRg: rootRg,
		engine: engine,
	}
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
	for _, c := range pool.root {
		c.RegisterRoutes(pool.rootRg)
	}
}

func (pool *ControllerPool) RunAll(port string) {
	if err := pool.engine.Run(":" + port); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

// AddRoot registers a controller outside the API prefix. The websocket
// endpoint and the health probe live at the server root.
func (pool *ControllerPool) AddRoot(c Controller) {
	pool.root = append(pool.root, c)
}
