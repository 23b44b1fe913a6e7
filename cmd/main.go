package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nadafaclean/store-service/config"
	"github.com/nadafaclean/store-service/internal/auth"
	"github.com/nadafaclean/store-service/internal/cart"
	"github.com/nadafaclean/store-service/internal/catalog"
	"github.com/nadafaclean/store-service/internal/content"
	"github.com/nadafaclean/store-service/internal/messages"
	"github.com/nadafaclean/store-service/internal/order"
	"github.com/nadafaclean/store-service/pkg/httpserver"
	"github.com/nadafaclean/store-service/pkg/kvstore"
	"github.com/nadafaclean/store-service/pkg/logger"
	"github.com/nadafaclean/store-service/pkg/notify"
)

func main() {
	godotenv.Load()

	log := logger.NewLogger("debug", &logger.MainLogHook{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	env, err := config.GetEnvironment(cfg.Store.Driver == "postgres")
	if err != nil {
		log.Fatalf(err.Error())
	}

	store, err := openStore(cfg, env)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	hub := notify.NewHub(logger.NewLogger(env.LogLvl, nil))

	catalogLog := logger.NewLogger(env.LogLvl, &catalog.CatalogLogHook{})
	catalogService := catalog.NewService(catalog.NewStorage(store, catalogLog), catalogLog, hub)

	cartLog := logger.NewLogger(env.LogLvl, &cart.CartLogHook{})
	cartService := cart.NewService(cart.NewStorage(store, cartLog), cartLog)

	orderLog := logger.NewLogger(env.LogLvl, &order.OrderLogHook{})
	orderService := order.NewService(order.NewStorage(store, orderLog), cartService, catalogService, orderLog, hub)

	authLog := logger.NewLogger(env.LogLvl, &auth.AuthLogHook{})
	authService, err := auth.NewService(auth.NewStorage(store, authLog), authLog, env.JWTSecret, env.SeedAdminUsername, env.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to init auth service: %v", err)
	}

	messagesLog := logger.NewLogger(env.LogLvl, &messages.MessagesLogHook{})
	messagesService := messages.NewService(messages.NewStorage(store, messagesLog), messagesLog, hub)

	contentLog := logger.NewLogger(env.LogLvl, &content.ContentLogHook{})
	contentService := content.NewService(content.NewStorage(store, contentLog), contentLog)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth.NewHandler(authService, authLog).Register(router)
	catalog.NewHandler(catalogService, catalogLog, authService).Register(router)
	cart.NewHandler(cartService, catalogService, cartLog).Register(router)
	order.NewHandler(orderService, authService, hub, orderLog).Register(router)
	messages.NewHandler(messagesService, authService, messagesLog).Register(router)
	content.NewHandler(contentService, authService, contentLog).Register(router)

	server := new(httpserver.Server)

	go func() {
		if err := server.Run(cfg.Server.Port, router); err != nil {
			log.Fatalf("Failed running server %v", err)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	oscall := <-interrupt
	log.Infof("Shutdown server, %s", oscall)

	if err := server.Shutdown(context.Background()); err != nil {
		log.Errorf("Error occured on server shutting down: %v", err)
	}
}

func openStore(cfg config.Config, env config.AppEnv) (kvstore.Store, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return kvstore.OpenGormStore(kvstore.PostgresConfig{
			Host:     env.PgHost,
			Port:     env.PgPort,
			Username: env.PgUser,
			Password: env.PgPassword,
			DBName:   env.PgDbName,
			SSLMode:  env.SSLMode,
			TimeZone: env.TimeZone,
		})
	case "memory":
		return kvstore.NewMemStore(), nil
	default:
		return kvstore.NewFileStore(cfg.Store.Dir)
	}
}
