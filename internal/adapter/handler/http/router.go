package http

import (
	"github.com/adinugroho/laundryhub/internal/adapter/config"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	appConf *config.App,
	backend string,
	tokenService port.TokenService,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	customerHandler *CustomerHandler,
	notificationHandler *NotificationHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authMW := authCheck(tokenService, backend, NewHandler(logger))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
			user.POST("/verify-email", userHandler.VerifyEmail)
			user.POST("/resend-verification", userHandler.ResendVerification)

			if appConf.Mode == config.AppModeDevelop {
				debug := user.Group("/debug")
				{
					debug.GET("/users", userHandler.ListUsers)
					debug.DELETE("/users", userHandler.ClearUsers)
				}
			}

			orders := user.Group("/orders")
			{
				orders.Use(authMW)
				orders.POST("", orderHandler.CreateOrder)
				orders.GET("", orderHandler.ListOrdersByUser)
				orders.DELETE("", orderHandler.ResetOrders)
				orders.GET("/report", orderHandler.OrderReport)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
				orders.POST("/:id/payments", orderHandler.AddPayment)
			}

			customers := user.Group("/customers")
			{
				customers.Use(authMW)
				customers.POST("", customerHandler.CreateCustomer)
				customers.GET("", customerHandler.ListCustomers)
			}

			services := user.Group("/services")
			{
				services.Use(authMW)
				services.GET("", customerHandler.ListServices)
			}

			notifications := user.Group("/notifications")
			{
				notifications.Use(authMW)
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.POST("/read", notificationHandler.MarkNotificationsRead)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
