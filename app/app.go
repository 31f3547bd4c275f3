package app

import (
	"log"
	"os"

	"bolajon-kids/app/controller"
	"bolajon-kids/app/router"
	"bolajon-kids/catalog"
	"bolajon-kids/db"
	"bolajon-kids/repository"
	"bolajon-kids/service"
)

// Initialize initializes the application
func Initialize() error {
	cat := catalog.New()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	// Order archive is optional: without a database the order flow still
	// works, only /admin/orders is unavailable
	var orderRepo repository.OrderRepositoryInterface
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "" {
		if err := db.InitDB(); err != nil {
			log.Printf("⚠️  Order archive disabled: %v", err)
		} else {
			orderRepo = repository.NewOrderRepository()
		}
	} else {
		log.Printf("⚠️  No database configured, order archive disabled")
	}

	// Structured-data sink: native Sheets append when a spreadsheet is
	// configured, otherwise the webhook-style endpoint. Without either the
	// order flow cannot record orders — log loudly but keep the page up;
	// submissions will report failure.
	var structured service.StructuredSink
	if spreadsheetID := os.Getenv("SHEETS_SPREADSHEET_ID"); spreadsheetID != "" {
		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			log.Printf("❌ SHEETS_SPREADSHEET_ID is set but GOOGLE_APPLICATION_CREDENTIALS is not")
		} else {
			sheetsService, err := service.NewSheetsService(credentialsPath, spreadsheetID, os.Getenv("SHEETS_RANGE"))
			if err != nil {
				log.Printf("❌ Failed to initialize Sheets service: %v", err)
			} else {
				structured = sheetsService
				log.Printf("✓ Orders will be appended to spreadsheet %s", spreadsheetID)
			}
		}
	}
	if structured == nil {
		if endpoint := os.Getenv("SHEETS_ENDPOINT"); endpoint != "" {
			structured = service.NewWebhookSink(endpoint)
			log.Printf("✓ Orders will be posted to the sheets endpoint")
		}
	}
	if structured == nil {
		log.Printf("❌ No structured-data sink configured (set SHEETS_SPREADSHEET_ID or SHEETS_ENDPOINT) — order submissions will fail")
	}

	// Telegram notifications degrade gracefully when credentials are absent
	var telegram *service.TelegramService
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHANNEL_ID")
	if token != "" && chatID != "" {
		telegram = service.NewTelegramService(token, chatID)
		log.Printf("✓ Telegram notifications enabled for channel %s", chatID)
	} else {
		log.Printf("⚠️  Telegram credentials not set, notifications disabled")
	}

	// Optional secondary webhook, fired best-effort after a successful
	// spreadsheet append
	var backup service.StructuredSink
	if webhookURL := os.Getenv("ORDERS_WEBHOOK_URL"); webhookURL != "" {
		backup = service.NewWebhookSink(webhookURL)
		log.Printf("✓ Backup order webhook enabled")
	}

	// The notification sink is passed as nil when disabled so the pipeline
	// skips it instead of calling a dead client
	var notifier service.NotificationSink
	if telegram != nil {
		notifier = telegram
	}
	orderService := service.NewOrderService(structured, notifier, backup, orderRepo)

	lookbookService := service.NewLookbookService(cat, baseURL)

	if err := service.EnsureCacheDir(); err != nil {
		log.Printf("⚠️  Failed to create image cache directory: %v", err)
	}

	// Create controllers
	controllers := &router.Controllers{
		State:    controller.NewStateController(cat),
		Product:  controller.NewProductController(cat),
		Order:    controller.NewOrderController(cat, orderService, orderRepo, baseURL),
		Telegram: controller.NewTelegramController(telegram),
		Image:    controller.NewImageController(),
		Lookbook: controller.NewLookbookController(lookbookService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
