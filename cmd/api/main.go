package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apphttp "bookrepo/internal/http"
	"bookrepo/internal/collation"
	"bookrepo/internal/httpx"
	"bookrepo/internal/store"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger := initLogger(getEnv("LOG_LEVEL", "info"))
	slog.SetDefault(logger)

	serverAddress := getEnv("APP_ADDR", ":8080")
	booksFile := getEnv("BOOKS_FILE", "data/books.json")
	categoriesFile := getEnv("CATEGORIES_FILE", "data/categories.json")
	baseImageURL := mustGetEnv("BASE_IMAGE_URL")
	locale := getEnv("BOOKS_LOCALE", "sr-Cyrl")

	for _, path := range []string{booksFile, categoriesFile} {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fatal("cannot create data directory", "path", path, "err", err)
		}
	}

	collator, err := collation.New(locale)
	if err != nil {
		fatal("cannot build collator", "locale", locale, "err", err)
	}

	storeOpts := []store.Option{store.WithLogger(logger)}
	switch locking := getEnv("STORE_LOCKING", "none"); locking {
	case "mutex":
		storeOpts = append(storeOpts, store.WithSingleWriter())
	case "none":
	default:
		fatal("unknown STORE_LOCKING value", "value", locking)
	}

	bookRepository := store.NewBookFile(booksFile, baseImageURL, collator, storeOpts...)
	categoryRepository := store.NewCategoryFile(categoriesFile, storeOpts...)

	bookHandler := apphttp.NewBookHandler(bookRepository)
	categoryHandler := apphttp.NewCategoryHandler(categoryRepository)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("/books", bookHandler.Collection)
	router.HandleFunc("/books/search", bookHandler.Search)
	router.HandleFunc("/books/", bookHandler.Item)
	router.HandleFunc("/categories", categoryHandler.Collection)
	router.HandleFunc("/categories/", categoryHandler.Item)

	allowedOrigins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "50"), 64)
	if err != nil || rps <= 0 {
		rps = 50
	}
	rateLimit := httpx.NewRateLimitMiddleware(rps, int(rps)*2)

	var handler http.Handler = router
	handler = httpx.CORSMiddleware(allowedOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("starting server", "addr", serverAddress, "books", booksFile, "categories", categoriesFile, "locale", locale)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fatal("server error", "err", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustGetEnv(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	fatal("missing required environment variable", "key", key)
	return ""
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

func initLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      logLevel,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})
	return slog.New(handler)
}
