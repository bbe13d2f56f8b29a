package server

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	mid "github.com/vhnguyenx/storefront-gateway/pkg/middleware"
)

func SetupRouter(logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(mid.RequestID())
	router.Use(mid.RequestLogger(logger))

	return router
}

func StartServer(port string, router *gin.Engine, logger *logrus.Logger) {
	logger.Infof("listening on %s", port)
	if err := router.Run(port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
