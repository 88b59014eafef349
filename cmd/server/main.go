package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"frontdesk-backend/internal/archive"
	"frontdesk-backend/internal/cache"
	"frontdesk-backend/internal/config"
	"frontdesk-backend/internal/export"
	"frontdesk-backend/internal/handlers"
	"frontdesk-backend/internal/health"
	h "frontdesk-backend/internal/http"
	"frontdesk-backend/internal/middleware"
	"frontdesk-backend/internal/monitoring"
	"frontdesk-backend/internal/prefs"
	"frontdesk-backend/internal/services"
	"frontdesk-backend/internal/session"
	"frontdesk-backend/internal/sheets"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	statsPort := flag.Int("stats-port", 9090, "Monitoring stats server port")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (sheet reads will not be cached)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Sheet API client - the only data source this service has
	sheetClient := sheets.NewClient(cfg.Sheets.BaseURL, cfg.SheetTimeout())

	// Health checker
	healthChecker := health.NewChecker(cfg.Sheets.BaseURL)

	// Start monitoring stats server in background
	go monitoring.NewServer(*statsPort).Start()

	// Billing session (the desk's working list of bills)
	store := session.NewStore()

	// Exporter with the hotel identity from config
	exporter := export.NewExporter(export.HotelInfo{
		Name:    cfg.Hotel.Name,
		Address: cfg.Hotel.Address,
		Phone:   cfg.Hotel.Phone,
		Policy:  cfg.Hotel.Policy,
	})

	// Optional artifact archive (disabled when credentials are absent)
	if archiver := archive.New(archive.Settings{
		Endpoint:  cfg.Archive.Endpoint,
		AccessKey: cfg.Archive.AccessKey,
		SecretKey: cfg.Archive.SecretKey,
		Bucket:    cfg.Archive.Bucket,
		Region:    cfg.Archive.Region,
	}); archiver != nil {
		exporter.Archiver = archiver
		log.Println("[Archive] Export archiving enabled")
	} else {
		log.Println("[Archive] Export archiving disabled (no credentials)")
	}

	// Preference store: Redis-backed when the cache is up, else in-memory
	var prefStore prefs.Store
	if client := cache.GetClient(); client != nil {
		prefStore = prefs.NewRedisStore(client)
	} else {
		prefStore = prefs.NewMemoryStore()
	}

	// Services
	bookingService := services.NewBookingService(sheetClient)

	// Handlers
	billHandler := handlers.NewBillHandler(store)
	exportHandler := handlers.NewExportHandler(store, exporter)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	prefsHandler := handlers.NewPrefsHandler(prefStore)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Router wrapped with panic recovery, metrics and CORS
	router := h.NewRouter(billHandler, exportHandler, bookingHandler, prefsHandler, healthHandler)
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (hotel: %s)", addr, cfg.Hotel.Name)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
