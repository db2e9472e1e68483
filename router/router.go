package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cvargas352/Projeto-integrador-final/controllers"
	"github.com/cvargas352/Projeto-integrador-final/middlewares"
	"github.com/cvargas352/Projeto-integrador-final/models"
	"github.com/cvargas352/Projeto-integrador-final/pricing"
)

// SetupRouter wires every endpoint consumed by the customer front-end
// and the restaurant dashboard.
func SetupRouter(db *gorm.DB, fees pricing.FeePolicy) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db, fees)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Credential endpoints, throttled hard.
	auth := r.Group("/users")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// -- CUSTOMER SURFACE (no auth, matching the original contract) --
	r.GET("/users/:user_id", userCtrl.GetUser)
	r.PUT("/users/:user_id", userCtrl.UpdateUser)
	r.GET("/products", productCtrl.GetAllProducts)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders", orderCtrl.GetAllOrders)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// -- AUTHENTICATED --
	me := r.Group("/")
	me.Use(middlewares.AuthMiddleware())
	{
		me.GET("/profile", userCtrl.GetProfile)
	}

	// -- RESTAURANT SURFACE --
	restaurant := r.Group("/")
	restaurant.Use(middlewares.AuthMiddleware(), middlewares.RequireRole(models.RoleRestaurant))
	{
		restaurant.POST("/products", productCtrl.CreateProduct)
		restaurant.PUT("/products/:product_id", productCtrl.UpdateProduct)
		restaurant.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	}

	return r
}
