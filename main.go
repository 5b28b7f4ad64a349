package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"notes-app/config"
	"notes-app/db"
	"notes-app/handlers"
	appmw "notes-app/middleware"
	"notes-app/models"
	"notes-app/service"
	"notes-app/store"
	"notes-app/token"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	var users store.UserStore
	var notes store.NoteStore
	if cfg.DSN != "" {
		conn, err := db.Connect(cfg.DSN)
		if err != nil {
			log.Fatal("DB connection error: ", err)
		}
		users = store.NewSQLUserStore(conn)
		notes = store.NewSQLNoteStore(conn)
	} else {
		log.Println("DSN not set, using in-memory stores (data is not persisted)")
		users = store.NewMemUserStore()
		notes = store.NewMemNoteStore()
	}

	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)
	authSvc := service.NewAuthService(users, tokens)
	noteSvc := service.NewNoteService(notes, users)

	if err := seedAdmin(context.Background(), users, cfg); err != nil {
		log.Fatal("Admin seed error: ", err)
	}

	r := newRouter(
		&handlers.AuthHandler{Auth: authSvc},
		&handlers.NoteHandler{Notes: noteSvc},
		tokens,
	)

	log.Println("Server running on", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}

func newRouter(auth *handlers.AuthHandler, notes *handlers.NoteHandler, tokens *token.Service) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/api/auth/signup", auth.Signup)
	r.Post("/api/auth/signin", auth.Signin)

	r.Group(func(r chi.Router) {
		r.Use(appmw.Authenticate(tokens))
		r.Get("/api/notes", notes.List)
		r.Get("/api/notes/{id}", notes.Get)
		r.Post("/api/notes", notes.Create)
		r.Put("/api/notes/{id}", notes.Update)
		r.Delete("/api/notes/{id}", notes.Delete)
	})

	return r
}

// seedAdmin creates the configured admin account on first boot. A second
// boot finds the email taken and leaves the existing row alone.
func seedAdmin(ctx context.Context, users store.UserStore, cfg config.App) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &models.User{
		Name:         "Admin",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	err = users.Create(ctx, admin)
	if errors.Is(err, store.ErrDuplicateEmail) {
		return nil
	}
	return err
}
