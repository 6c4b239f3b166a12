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

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/M-U-C-K-A/matcha/internal/admin"
	"github.com/M-U-C-K-A/matcha/internal/auth"
	"github.com/M-U-C-K-A/matcha/internal/common/database"
	"github.com/M-U-C-K-A/matcha/internal/config"
	"github.com/M-U-C-K-A/matcha/internal/conversation"
	"github.com/M-U-C-K-A/matcha/internal/engagement"
	"github.com/M-U-C-K-A/matcha/internal/matching"
	"github.com/M-U-C-K-A/matcha/internal/moderation"
	"github.com/M-U-C-K-A/matcha/internal/notification"
	"github.com/M-U-C-K-A/matcha/internal/profile"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Matcha Dating API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load and validate configuration
	log.Println("\n📋 Step 2: Loading configuration...")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed:", err)
	}
	log.Println("✅ Configuration loaded")

	// 3. Connect to PostgreSQL
	log.Println("\n🗄️  Step 3: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL:", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 4. Connect to Redis (optional)
	log.Println("\n📮 Step 4: Connecting to Redis...")
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without it", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Println("✅ Connected to Redis successfully")
		}
	} else {
		log.Println("⚠️  Redis URL not configured, skipping Redis connection")
	}

	// 5. Run database migrations
	log.Println("\n🔨 Step 5: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Fatal("❌ Failed to run migrations: ", err)
	}
	log.Println("✅ Database migrations completed")

	// 6. Initialize services
	log.Println("\n🧩 Step 6: Wiring services...")

	authRepo := auth.NewPostgresRepository(db)
	authService := auth.NewService(authRepo, redisClient, &auth.Config{
		JWTSecret:          cfg.JWTSecret,
		AccessTokenExpiry:  cfg.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.RefreshTokenExpiry,
		BCryptCost:         cfg.BCryptCost,
	})
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	profileRepo := profile.NewPostgresRepository(db)
	profileService := profile.NewService(profileRepo)
	profileHandler := profile.NewHandler(profileService)

	matchingRepo := matching.NewPostgresRepository(db)
	matchingService := matching.NewService(matching.NewRanker(matchingRepo))
	matchingHandler := matching.NewHandler(matchingService, cfg.DefaultCandidateLimit)

	moderationRepo := moderation.NewPostgresRepository(db)
	moderationService := moderation.NewService(moderationRepo)
	moderationHandler := moderation.NewHandler(moderationService)

	notificationRepo := notification.NewPostgresRepository(db)
	notificationService := notification.NewService(notificationRepo)
	notificationHandler := notification.NewHandler(notificationService)

	engagementRepo := engagement.NewPostgresRepository(db)
	engagementService := engagement.NewService(engagementRepo, notificationService)
	engagementHandler := engagement.NewHandler(engagementService)

	conversationRepo := conversation.NewPostgresRepository(db)
	conversationService := conversation.NewService(conversationRepo, matchingRepo, notificationService)
	conversationHandler := conversation.NewHandler(conversationService)

	log.Println("✅ Services wired")

	// 7. Build the router
	log.Println("\n🌐 Step 7: Registering routes...")
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	auth.RegisterRoutes(router, authHandler, authMiddleware)
	profile.RegisterRoutes(router, profileHandler, authMiddleware)
	matching.RegisterRoutes(router, matchingHandler, authMiddleware)
	moderation.RegisterRoutes(router, moderationHandler, authMiddleware)
	engagement.RegisterRoutes(router, engagementHandler, authMiddleware)
	conversation.RegisterRoutes(router, conversationHandler, authMiddleware)
	notification.RegisterRoutes(router, notificationHandler, authMiddleware)

	if cfg.EnableAdminInspector {
		adminRepo := admin.NewPostgresRepository(db)
		adminHandler := admin.NewHandler(admin.NewService(adminRepo))
		admin.RegisterRoutes(router, adminHandler, authMiddleware)
		log.Println("   ✅ Admin inspector enabled")
	}

	router.Use(requestIDMiddleware)
	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)
	log.Println("✅ Routes registered")

	// 8. Start the HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("\n========================================")
		log.Printf("🚀 Server starting on http://localhost%s", srv.Addr)
		log.Printf("🌍 Environment: %s", cfg.Environment)
		log.Println("========================================")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n⚠️  Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown:", err)
	}

	log.Println("✅ Server exited gracefully")
}

// healthCheck returns server health status
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","uptime":"%s"}`, time.Since(startTime).Round(time.Second))
}

var startTime = time.Now()

// requestIDMiddleware tags every request for log correlation.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), "requestID", requestID)))
	})
}

// loggingMiddleware logs all requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		log.Printf("← %s %s [%d] %v", r.Method, r.RequestURI, wrapped.statusCode, time.Since(start))
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// runMigrations creates the schema if it does not exist yet.
func runMigrations(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			username VARCHAR(100) UNIQUE NOT NULL,
			firstname VARCHAR(100) NOT NULL,
			lastname VARCHAR(100) NOT NULL,
			password VARCHAR(255) NOT NULL,
			gender VARCHAR(20),
			sex_preference VARCHAR(20),
			bio TEXT,
			birthdate DATE NOT NULL,
			popularity BIGINT NOT NULL DEFAULT 0,
			is_verified BOOLEAN NOT NULL DEFAULT FALSE,
			status VARCHAR(20) NOT NULL DEFAULT 'offline',
			last_seen TIMESTAMPTZ,
			latitude DOUBLE PRECISION,
			longitude DOUBLE PRECISION,
			city VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS photos (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			profile_picture BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS tags (
			id BIGSERIAL PRIMARY KEY,
			slug VARCHAR(100) UNIQUE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS users_preferences (
			user_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			tag_id BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
			PRIMARY KEY (user_id, tag_id)
		)`,

		`CREATE TABLE IF NOT EXISTS blocks (
			id BIGSERIAL PRIMARY KEY,
			blocker_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			blocked_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (blocker_id, blocked_id)
		)`,

		`CREATE TABLE IF NOT EXISTS reports (
			id BIGSERIAL PRIMARY KEY,
			reporter_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			reported_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			reason TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (reporter_id, reported_id)
		)`,

		`CREATE TABLE IF NOT EXISTS likes (
			id BIGSERIAL PRIMARY KEY,
			liker_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			liked_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (liker_id, liked_id)
		)`,

		`CREATE TABLE IF NOT EXISTS profile_views (
			id BIGSERIAL PRIMARY KEY,
			viewer_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			viewed_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS conversations (
			id BIGSERIAL PRIMARY KEY,
			user_a_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			user_b_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_message_at TIMESTAMPTZ,
			UNIQUE (user_a_id, user_b_id),
			CHECK (user_a_id < user_b_id)
		)`,

		`CREATE TABLE IF NOT EXISTS messages (
			id BIGSERIAL PRIMARY KEY,
			conversation_id BIGINT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
			sender_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS notifications (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			actor_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			type VARCHAR(30) NOT NULL,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_profiles_location ON profiles (latitude, longitude)`,
		`CREATE INDEX IF NOT EXISTS idx_photos_user ON photos (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_users_preferences_user ON users_preferences (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_blocks_blocked ON blocks (blocked_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_reported ON reports (reported_id)`,
		`CREATE INDEX IF NOT EXISTS idx_likes_liked ON likes (liked_id)`,
		`CREATE INDEX IF NOT EXISTS idx_profile_views_viewed ON profile_views (viewed_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages (conversation_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id, is_read)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
