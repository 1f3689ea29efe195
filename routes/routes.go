package routes

import (
	"restaurant-order-api/auth"
	"restaurant-order-api/config"
	"restaurant-order-api/handlers"
	"restaurant-order-api/middleware"
	"restaurant-order-api/policy"
	"restaurant-order-api/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, the policy engine and controllers onto the
// router. The db handle is passed in explicitly; nothing here holds
// package-level state.
func Setup(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	users := repository.NewUserRepository(db)
	restaurants := repository.NewRestaurantRepository(db)
	products := repository.NewProductRepository(db)
	orders := repository.NewOrderRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	engine := policy.NewEngine(restaurants)

	authCtl := handlers.NewAuthController(users, tokens)
	userCtl := handlers.NewUserController(users, engine)
	restaurantCtl := handlers.NewRestaurantController(restaurants, engine)
	productCtl := handlers.NewProductController(products, restaurants, engine)
	orderCtl := handlers.NewOrderController(orders, restaurants, engine)
	qrCtl := handlers.NewQRCodeController(cfg.FrontendURL)

	authRequired := middleware.AuthRequired(tokens)

	// Auth
	r.POST("/auth/register", authCtl.Register)
	r.POST("/auth/login", authCtl.Login)
	r.GET("/auth/logout", authRequired, authCtl.Logout)

	// Users — role checks live in the handlers via the policy engine
	u := r.Group("/users", authRequired)
	{
		u.GET("", userCtl.List)
		u.POST("", userCtl.Create)
		u.PUT("/me", userCtl.UpdateMe)
		u.GET("/:id", userCtl.Get)
		u.PUT("/:id", userCtl.Update)
		u.DELETE("/:id", userCtl.Delete)
	}

	// Restaurants — browsing is public, writes are scoped
	r.GET("/restaurants", restaurantCtl.List)
	r.GET("/restaurants/me", authRequired, restaurantCtl.Mine)
	r.GET("/restaurants/:id", restaurantCtl.Get)
	r.POST("/restaurants", authRequired, restaurantCtl.Create)
	r.PUT("/restaurants/:id", authRequired, restaurantCtl.Update)
	r.DELETE("/restaurants/:id", authRequired, restaurantCtl.Delete)

	// Products
	p := r.Group("/products", authRequired)
	{
		p.GET("", productCtl.List)
		p.POST("", productCtl.Create)
		p.GET("/restaurant/:id", productCtl.ListByRestaurant)
		p.GET("/:id", productCtl.Get)
		p.PUT("/:id", productCtl.Update)
		p.DELETE("/:id", productCtl.Delete)
	}

	// Orders
	o := r.Group("/orders", authRequired)
	{
		o.POST("", orderCtl.Create)
		o.GET("", orderCtl.List)
		o.GET("/restaurant/:id", orderCtl.ListByRestaurant)
		o.GET("/me/:restaurantId", orderCtl.Mine)
		o.GET("/:id", orderCtl.Get)
		o.PUT("/:id", orderCtl.UpdateStatus)
		o.DELETE("/:id", orderCtl.Delete)
	}

	// Table QR codes
	r.POST("/qrcodes", authRequired, qrCtl.Create)
}
