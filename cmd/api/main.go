package main

import (
	"context"

	"github.com/sirupsen/logrus"

	cfg "github.com/vhnguyenx/storefront-gateway/config"
	factory "github.com/vhnguyenx/storefront-gateway/factory"
	server "github.com/vhnguyenx/storefront-gateway/server"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	env := cfg.LoadConfig(logger)

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	ctx := context.Background()
	defer ctx.Done()

	router := server.SetupRouter(logger)

	factory.InitFactory(router, env, logger, ctx)

	server.StartServer(env.ServerPort, router, logger)
}
