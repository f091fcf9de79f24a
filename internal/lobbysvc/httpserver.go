package lobbysvc

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewIntrospectionRouter builds the Lobby's read-only HTTP surface: a
// liveness probe and a snapshot of directory size, for operators who want
// a quick look without a gRPC client. It carries no mutating routes and
// no authentication, consistent with the rest of this system.
func NewIntrospectionRouter(s *Server) *gin.Engine {
	router := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(config))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Snapshot())
	})

	return router
}
