package http

import (
	_ "ordering/docs" // swagger document

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// NewEcho builds the echo instance with error mapping, validation, CORS, access
// logging and routes.
func NewEcho(s *Server, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(Authenticate(s.users))

	s.RegisterRoutes(e)
	return e
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.GET("/me", s.Me)

	menu := e.Group("/menu")
	menu.GET("/categories", s.GetCategories)
	menu.GET("/products", s.GetProducts)
	menu.GET("/products/:categoryId", s.GetProductsByCategory)
	menu.GET("/product/:productId", s.GetProduct)

	carts := e.Group("/cart")
	carts.POST("/add", s.AddToCart)
	carts.POST("/remove", s.RemoveFromCart)
	carts.POST("/clear", s.ClearCart)
	carts.POST("/checkout", s.Checkout)
	carts.GET("/:cartId", s.GetCart)

	orders := e.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/search", s.SearchOrders)
	orders.GET("/recent", s.RecentOrders)
	orders.GET("/:orderNumber", s.GetOrder)
	orders.GET("/:orderNumber/track", s.TrackOrder)
	orders.PUT("/:orderNumber/status", s.SetOrderStatus)
	orders.DELETE("/:orderNumber", s.DeleteOrder)

	kitchen := e.Group("/kitchen")
	kitchen.POST("/send-order", s.SendToKitchen)
	kitchen.GET("/orders", s.ListTickets)
	kitchen.GET("/orders/:orderNumber", s.GetTicket)
	kitchen.PUT("/orders/:orderNumber/status", s.UpdateTicketStatus)
	kitchen.PUT("/orders/:orderNumber/assign", s.AssignTicket)
	kitchen.DELETE("/orders/:orderNumber", s.DeleteTicket)
}
