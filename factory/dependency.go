package factory

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	cfg "github.com/vhnguyenx/storefront-gateway/config"
	imagehost "github.com/vhnguyenx/storefront-gateway/pkg/imagehost"
	mid "github.com/vhnguyenx/storefront-gateway/pkg/middleware"

	authClient "github.com/vhnguyenx/storefront-gateway/internal/features/auth/client"
	authHandler "github.com/vhnguyenx/storefront-gateway/internal/features/auth/handler"
	authService "github.com/vhnguyenx/storefront-gateway/internal/features/auth/service"

	products "github.com/vhnguyenx/storefront-gateway/internal/features/products"
	productsClient "github.com/vhnguyenx/storefront-gateway/internal/features/products/client"
	productsHandler "github.com/vhnguyenx/storefront-gateway/internal/features/products/handler"
	productsService "github.com/vhnguyenx/storefront-gateway/internal/features/products/service"

	cartClient "github.com/vhnguyenx/storefront-gateway/internal/features/cart/client"
	cartHandler "github.com/vhnguyenx/storefront-gateway/internal/features/cart/handler"
	cartService "github.com/vhnguyenx/storefront-gateway/internal/features/cart/service"

	ordersClient "github.com/vhnguyenx/storefront-gateway/internal/features/orders/client"
	ordersHandler "github.com/vhnguyenx/storefront-gateway/internal/features/orders/handler"
	ordersService "github.com/vhnguyenx/storefront-gateway/internal/features/orders/service"
)

func InitFactory(router *gin.Engine, env *cfg.Config, logger *logrus.Logger, ctx context.Context) {
	authMW := mid.AuthMiddleware(env.JWTSecret, logger)
	uploader := imagehost.NewClient(env.ImageHostBaseURL, env.ImageCloudName, env.ImageUploadPreset, env.RequestTimeout, logger)

	iProductClient := productsClient.NewProductClient(env.BackendBaseURL, env.RequestTimeout, logger)
	catalogView := products.NewCatalogView(env.CatalogPageSize)
	iProductService := productsService.NewProductService(ctx, iProductClient, uploader, catalogView)
	productsHandler.NewProductHandler(router, iProductService, authMW)

	iCartClient := cartClient.NewCartClient(env.BackendBaseURL, env.RequestTimeout, logger)
	iCartService := cartService.NewCartService(ctx, iCartClient)
	cartHandler.NewCartHandler(router, iCartService, authMW)

	iOrderClient := ordersClient.NewOrderClient(env.BackendBaseURL, env.RequestTimeout, logger)
	iOrderService := ordersService.NewOrderService(ctx, iOrderClient)
	ordersHandler.NewOrderHandler(router, iOrderService, authMW)

	iAuthClient := authClient.NewAuthClient(env.BackendBaseURL, env.RequestTimeout, logger)
	iAuthService := authService.NewAuthService(ctx, iAuthClient)
	authHandler.NewAuthHandler(router, iAuthService, authMW)
}
