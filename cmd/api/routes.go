package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/commerce-api/docs"
	"github.com/MikeMC777/commerce-api/internal/auth"
	"github.com/MikeMC777/commerce-api/internal/category"
	"github.com/MikeMC777/commerce-api/internal/httpx"
	"github.com/MikeMC777/commerce-api/internal/order"
	"github.com/MikeMC777/commerce-api/internal/product"
	"github.com/MikeMC777/commerce-api/internal/user"
)

type productService interface {
	FindByID(ctx context.Context, id int64) (*product.Product, error)
	FindAll(ctx context.Context, name string, page, size int) (product.Page[product.Min], error)
	Insert(ctx context.Context, in product.Payload) (*product.Product, error)
	Update(ctx context.Context, id int64, in product.Payload) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
}

type orderService interface {
	FindByID(ctx context.Context, id int64) (*order.Order, error)
	Insert(ctx context.Context, in order.Payload) (*order.Order, error)
}

type userService interface {
	Login(ctx context.Context, in user.Credentials) (*user.Token, error)
	GetMe(ctx context.Context) (*user.Profile, error)
}

type categoryService interface {
	FindAll(ctx context.Context) ([]category.Category, error)
}

type deps struct {
	log        *slog.Logger
	issuer     *auth.Issuer
	products   productService
	orders     orderService
	users      userService
	categories categoryService
	registry   *prometheus.Registry
	// ping reports storage health; nil means always healthy.
	ping func(ctx context.Context) error
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	metrics := httpx.NewMetrics(d.registry)
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.log), metrics.Middleware())

	r.GET("/healthz", healthHandler(d.ping))
	r.GET("/metrics", httpx.MetricsHandler(d.registry))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/auth/login", loginHandler(d.users, d.log))
	r.GET("/categories", listCategoriesHandler(d.categories, d.log))

	r.GET("/products", listProductsHandler(d.products, d.log))
	r.GET("/products/:id", getProductHandler(d.products, d.log))

	authn := auth.Authenticate(d.issuer)

	admin := r.Group("/products", authn, auth.RequireRole(auth.RoleAdmin))
	admin.POST("", createProductHandler(d.products, d.log))
	admin.PUT("/:id", updateProductHandler(d.products, d.log))
	admin.DELETE("/:id", deleteProductHandler(d.products, d.log))

	orders := r.Group("/orders", authn)
	orders.GET("/:id", auth.RequireRole(auth.RoleAdmin, auth.RoleClient), getOrderHandler(d.orders, d.log))
	orders.POST("", auth.RequireRole(auth.RoleClient), createOrderHandler(d.orders, d.log))

	r.GET("/users/me", authn, auth.RequireRole(auth.RoleClient, auth.RoleAdmin), meHandler(d.users, d.log))
	return r
}

func healthHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
