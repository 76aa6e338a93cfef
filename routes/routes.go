package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
)

type Options struct {
	CorsOrigins []string
	// APIKey guards every mutating route when set.
	APIKey string
	// Metrics serves /metrics; the route is omitted when nil.
	Metrics http.Handler
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the /api routes.
func SetupRouter(
	hc *controllers.HotelController,
	cc *controllers.CustomerController,
	rc *controllers.ReservationController,
	rpc *controllers.ReportController,
	opts Options,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := corsOrigins(opts.CorsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.APIKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	guard := middleware.RequireAPIKey(opts.APIKey)

	api := r.Group("/api")
	{
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.ListHotels)
			hotels.POST("", guard, hc.CreateHotel)
			hotels.GET("/:id", hc.GetHotel)
			hotels.PATCH("/:id", guard, hc.UpdateHotel)
			hotels.DELETE("/:id", guard, hc.DeleteHotel)
			hotels.POST("/:id/reserve", guard, hc.ReserveRoom)
			hotels.POST("/:id/cancel", guard, hc.CancelRoom)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", cc.ListCustomers)
			customers.POST("", guard, cc.CreateCustomer)
			customers.GET("/:id", cc.GetCustomer)
			customers.PATCH("/:id", guard, cc.UpdateCustomer)
			customers.DELETE("/:id", guard, cc.DeleteCustomer)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.ListReservations)
			reservations.POST("", guard, rc.CreateReservation)

			// static segment, matched before /:id
			reservations.GET("/export", rc.ExportReservations)

			reservations.GET("/:id", rc.GetReservation)
			reservations.POST("/:id/cancel", guard, rc.CancelReservation)
		}

		reportRoutes := api.Group("/reports")
		{
			reportRoutes.POST("/statistics", rpc.Statistics)
			reportRoutes.POST("/conversion", rpc.Conversion)
			reportRoutes.POST("/wordcount", rpc.WordCount)
			reportRoutes.POST("/sales", rpc.Sales)
		}
	}

	return r
}
