package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MatBureau/appservice-demo/handlers"
	"github.com/MatBureau/appservice-demo/internal/config"
	"github.com/MatBureau/appservice-demo/internal/system"
)

func main() {
	cfg := config.Load()
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}

	collector := system.NewCollector()
	banner(cfg, collector)

	h, err := handlers.New(cfg, handlers.Options{System: collector})
	if err != nil {
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handlers.NewRouter(h),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Serving on http://%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped")
}

func banner(cfg config.Settings, collector *system.Collector) {
	log.Printf("Starting Go Demo App v%s on port %d", handlers.Version, cfg.Port)
	log.Printf("Environment: %s", cfg.Environment)
	if snap, err := collector.Collect(context.Background()); err != nil {
		log.Printf("Platform: unavailable (%v)", err)
	} else {
		log.Printf("Platform: %s", snap.PlatformString())
	}
	log.Printf("Demo Value: %s", config.DemoValue(os.LookupEnv))
}
