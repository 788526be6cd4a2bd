package main

import (
	"fmt"
	"net/http"

	"github.com/aisyahz/tepico88/configs"
	"github.com/aisyahz/tepico88/middlewares"
	"github.com/aisyahz/tepico88/routes"
	"github.com/aisyahz/tepico88/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	configs.SetupDatabase()

	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// Change feed hub
	hub := ws.NewFeedHub(log)
	go hub.Run()

	// Metrics on a side port
	go startMetricsServer(cfg.MetricsPort, log)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB(), cfg, hub, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Infow("server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

func startMetricsServer(port string, log *zap.SugaredLogger) {
	mr := gin.New()
	mr.GET("/metrics", gin.WrapH(promhttp.Handler()))

	log.Infow("metrics server running", "port", port)
	if err := http.ListenAndServe(":"+port, mr); err != nil {
		log.Warnw("metrics server stopped", "err", err)
	}
}
