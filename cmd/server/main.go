package main

import (
	"context"
	"discgolf-session-service/internal/adapters/location"
	"discgolf-session-service/internal/api"
	"discgolf-session-service/internal/api/handlers"
	"discgolf-session-service/internal/config"
	"discgolf-session-service/internal/session"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It builds the session machine, exposes it over HTTP and, when configured,
// feeds it from a serial GPS receiver.
func main() {
	cfg, err := config.Load("discgolf-session", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	machine := session.NewMachine(cfg.Session())
	sessionHandler := handlers.NewSessionHandler(machine)

	if cfg.GPSSerialPort != "" {
		gps := location.NewSerialGPS(cfg.GPSSerialPort, cfg.GPSBaudRate)
		feed := location.NewFeed(gps, sessionHandler, cfg.GPSCoalesce)
		go func() {
			if err := feed.Run(ctx); err != nil {
				log.Printf("gps feed stopped err=%v", err)
			}
		}()
	} else if ports, err := location.ListPorts(); err == nil && len(ports) > 0 {
		log.Printf("GPS disabled; serial ports available=%v (set GPS_SERIAL_PORT)", ports)
	}

	log.Printf("Server listening addr=:%s unit=%s wrap_angles=%t", cfg.Port, cfg.Unit, cfg.WrapAngles)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(sessionHandler),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown err=%v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
