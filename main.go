package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/uckkk/arthub/internal/config"
	"github.com/uckkk/arthub/internal/handlers"
	"github.com/uckkk/arthub/internal/logger"
	"github.com/uckkk/arthub/internal/mailbox"
	"go.uber.org/zap"
)

func main() {
	// Konfiguration laden
	config.InitConfig()

	// Logger initialisieren
	logger.InitLogger(config.Config.Debug)
	defer logger.Log.Sync()

	// Die eine geteilte Mailbox für ausstehende Workflows
	mb := mailbox.New()

	// Gin-Router initialisieren
	router := gin.Default()
	router.Use(cors.New(buildCORSConfig()))
	router.POST("/submit-workflow", handlers.NewSubmitHandler(mb))
	router.GET("/poll-workflow", handlers.NewPollHandler(mb))
	router.GET("/status", handlers.NewStatusHandler(config.Config.Name))

	logger.Log.Info("Registrierte Endpunkte:",
		zap.String("submit", "POST /submit-workflow"),
		zap.String("poll", "GET /poll-workflow"),
		zap.String("status", "GET /status"))

	// Server starten
	port := config.Config.Port
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	// Goroutine für das Abfangen von Shutdown-Signalen
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Log.Info("Server wird heruntergefahren...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Log.Fatal("Server-Shutdown fehlgeschlagen:", zap.Error(err))
		}

		logger.Log.Info("Server heruntergefahren.")
	}()

	// Server starten (blockierend)
	logger.Log.Info("Server startet...", zap.String("port", port))
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Log.Fatal("Fehler beim Starten des Servers:", zap.Error(err))
	}
}

// buildCORSConfig erlaubt dem ArtHub-Frontend den Zugriff von fremden
// Origins; ohne Konfiguration sind alle Origins erlaubt.
func buildCORSConfig() cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(config.Config.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = config.Config.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return corsCfg
}
