package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"cafemart/internal/caching"
	"cafemart/internal/handlers"
	"cafemart/internal/jobs/background"
	"cafemart/internal/repositories"
	"cafemart/internal/services"
	"cafemart/pkg/database"
)

const version = "1.0.0"

// requestValidator adapts go-playground/validator to echo's Validator.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	name := envOr("DB_NAME", "cafe_shop")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Database connection pool; failure here is fatal rather than serving
	// degraded traffic.
	pool, err := database.NewPool(databaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Redis configuration
	redisAddr := envOr("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	orderTimeout := 10 * time.Second
	if timeoutStr := os.Getenv("ORDER_TIMEOUT"); timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil && seconds > 0 {
			orderTimeout = time.Duration(seconds) * time.Second
		}
	}

	// Services
	productRepo := repositories.NewProductRepo(pool)
	catalogSvc := services.NewCatalogService(productRepo, cacheSvc)
	orderSvc := services.NewOrderService(pool, orderTimeout)

	// Handlers
	productHandlers := handlers.NewProductHandlers(catalogSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background catalog cache refresh
	scheduler, err := background.NewJobScheduler(catalogSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome to the Cafemart API")
	})

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	api := e.Group("/api")
	api.GET("/products", productHandlers.ListProducts)
	api.POST("/orders", orderHandlers.PlaceOrder)
	api.GET("/orders/:id", orderHandlers.GetOrder)

	port := envOr("PORT", "8080")
	log.Printf("Cafemart server v%s starting on port %s", version, port)
	e.Logger.Fatal(e.Start(":" + port))
}
