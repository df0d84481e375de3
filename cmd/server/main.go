package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/notes/api/internal/adapters/handler/http"
	"github.com/notes/api/internal/adapters/password"
	repo "github.com/notes/api/internal/adapters/repository/postgres"
	"github.com/notes/api/internal/adapters/token"
	"github.com/notes/api/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	secret := os.Getenv("JWT_SECRET")
	issuer, err := token.NewJWTIssuer([]byte(secret), token.DefaultTTL)
	if err != nil {
		log.Fatalf("JWT_SECRET must be set: %v", err)
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	userRepo := repo.NewUserRepository(db)
	noteRepo := repo.NewNoteRepository(db)

	authSvc := services.NewAuthService(userRepo, password.NewBcryptHasher(), issuer)
	noteSvc := services.NewNoteService(noteRepo)
	userSvc := services.NewUserService(userRepo)

	authHandler := http.NewAuthHandler(authSvc)
	noteHandler := http.NewNoteHandler(noteSvc)
	userHandler := http.NewUserHandler(userSvc)

	handler := http.NewHandler(authHandler, noteHandler, userHandler, authSvc, allowedOrigins())
	server := &stdhttp.Server{Addr: "0.0.0.0:8080", Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func allowedOrigins() []string {
	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"*"}
	}
	return strings.Split(origins, ",")
}

func dbConnString() string {
	dbName, user, password, host, port := dbConfig()
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}

func dbConfig() (dbName string, user string, password string, host string, port string) {
	dbName = os.Getenv("POSTGRES_DB")
	user = os.Getenv("POSTGRES_USER")
	password = os.Getenv("POSTGRES_PASSWORD")
	host = os.Getenv("POSTGRES_HOST")
	port = os.Getenv("POSTGRES_PORT")
	return
}
