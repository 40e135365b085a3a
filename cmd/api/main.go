package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/j7amo/e-commerce-api/internal/models"
	"github.com/j7amo/e-commerce-api/internal/payments"
)

type config struct {
	addr         string
	env          string
	mongoURI     string
	mongoDB      string
	jwtSecret    string
	jwtLifetime  time.Duration
	uploadDir    string
	maxImageSize int64
}

type application struct {
	config   config
	errorLog *log.Logger
	infoLog  *log.Logger
	users    models.UserStore
	products models.ProductStore
	reviews  models.ReviewStore
	orders   models.OrderStore
	payments payments.Client
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	addr := flag.String("addr", ":4000", "HTTP network address")
	env := flag.String("env", "development", "Environment (development|production)")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg := config{
		addr:         *addr,
		env:          *env,
		mongoURI:     os.Getenv("MONGO_URI"),
		mongoDB:      envOr("MONGO_DB", "e-commerce-api"),
		jwtSecret:    os.Getenv("JWT_SECRET"),
		jwtLifetime:  24 * time.Hour,
		uploadDir:    envOr("UPLOAD_DIR", "./public/uploads"),
		maxImageSize: 1 << 20,
	}
	if cfg.mongoURI == "" {
		errorLog.Fatal("MONGO_URI environment variable not found")
	}
	if cfg.jwtSecret == "" {
		errorLog.Fatal("JWT_SECRET environment variable not found")
	}
	if lifetime := os.Getenv("JWT_LIFETIME"); lifetime != "" {
		d, err := time.ParseDuration(lifetime)
		if err != nil {
			errorLog.Fatalf("invalid JWT_LIFETIME: %v", err)
		}
		cfg.jwtLifetime = d
	}

	client, err := models.OpenMongoDB(context.Background(), cfg.mongoURI)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			errorLog.Println(err)
		}
	}()
	infoLog.Println("Connected to database!")

	db := models.NewMongoDB(client.Database(cfg.mongoDB))
	if err := db.EnsureIndexes(context.Background()); err != nil {
		errorLog.Fatal(err)
	}

	if err := os.MkdirAll(cfg.uploadDir, 0o755); err != nil {
		errorLog.Fatal(err)
	}

	app := &application{
		config:   cfg,
		errorLog: errorLog,
		infoLog:  infoLog,
		users:    db.Users,
		products: db.Products,
		reviews:  db.Reviews,
		orders:   db.Orders,
		payments: payments.NewFakeStripe(),
	}

	srv := &http.Server{
		Addr:         cfg.addr,
		ErrorLog:     errorLog,
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	infoLog.Printf("Starting server on %s", cfg.addr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
