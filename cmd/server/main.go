package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/boshify/content-brief-generator/internal/config"
	"github.com/boshify/content-brief-generator/internal/handler"
	"github.com/boshify/content-brief-generator/internal/middleware"
	"github.com/boshify/content-brief-generator/internal/repository"
	"github.com/boshify/content-brief-generator/internal/service"
	"github.com/boshify/content-brief-generator/internal/webhook"
	"github.com/boshify/content-brief-generator/internal/websocket"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Webhook.URL == "" {
		log.Printf("WEBHOOK_URL is not set; generate requests will fail until it is configured")
	}

	sessionRepo := repository.NewSessionRepository()

	wsManager := websocket.NewManager(
		cfg.WebSocket.MaxConnPerSession,
		cfg.WebSocket.WriteWait,
		cfg.WebSocket.PongWait,
		cfg.WebSocket.PingPeriod,
	)
	go wsManager.Run()

	webhookClient := webhook.NewClient(cfg.Webhook.URL, cfg.Webhook.AuthHeader, cfg.Webhook.Timeout)

	sessionService := service.NewSessionService(sessionRepo, wsManager)
	outlineService := service.NewOutlineService(sessionService)
	mergeService := service.NewMergeService()
	briefService := service.NewBriefService(sessionService, mergeService, webhookClient)
	exportService := service.NewExportService(sessionService)

	wsManager.SetMessageHandler(handler.NewWebSocketMessageHandler(sessionService))

	sessionHandler := handler.NewSessionHandler(sessionService)
	outlineHandler := handler.NewOutlineHandler(outlineService)
	briefHandler := handler.NewBriefHandler(briefService)
	exportHandler := handler.NewExportHandler(exportService)
	wsHandler := handler.NewWebSocketHandler(wsManager, sessionService, cfg.WebSocket.ReadBufferSize, cfg.WebSocket.WriteBufferSize)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods("DELETE", "OPTIONS")

	api.HandleFunc("/sessions/{id}/title", outlineHandler.UpdateTitle).Methods("PUT", "OPTIONS")
	api.HandleFunc("/sessions/{id}/feedback", outlineHandler.UpdateFeedback).Methods("PUT", "OPTIONS")

	api.HandleFunc("/sessions/{id}/sections", outlineHandler.AddSection).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/sections/insert", outlineHandler.InsertSection).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/sections/move", outlineHandler.MoveSection).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/sections/relocate", outlineHandler.RelocateSection).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/sections/level", outlineHandler.ChangeHeadingLevel).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/groups/{group}/reorder", outlineHandler.ReorderGroup).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/groups/{group}/sections/{index}", outlineHandler.UpdateSection).Methods("PUT", "OPTIONS")
	api.HandleFunc("/sessions/{id}/groups/{group}/sections/{index}", outlineHandler.RemoveSection).Methods("DELETE", "OPTIONS")

	api.HandleFunc("/sessions/{id}/generate", briefHandler.Generate).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/export", exportHandler.Export).Methods("GET", "OPTIONS")

	r.HandleFunc("/ws", wsHandler.HandleConnection)

	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/", rootHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Generate blocks for the lifetime of the webhook call, so the
		// write timeout must sit above the webhook ceiling.
		WriteTimeout: cfg.Webhook.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting Content Brief Generator on %s (env: %s)", addr, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"content-brief-generator"}`))
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Content Brief Generator API","version":"1.0.0","endpoints":{"/api/v1/sessions":"POST","/api/v1/sessions/{id}":"GET","/api/v1/sessions/{id}/generate":"POST","/api/v1/sessions/{id}/export":"GET"}}`))
}
