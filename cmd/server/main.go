package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mateuszng/quizdeck/internal/api"
	dbstore "github.com/mateuszng/quizdeck/internal/db"
	"github.com/mateuszng/quizdeck/internal/middleware"
	"github.com/mateuszng/quizdeck/internal/utils"
)

func main() {
	addr := utils.SafeEnv("QUIZDECK_ADDR", ":8080")

	store, err := openStore()
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	adminUser := utils.SafeEnv("QUIZDECK_ADMIN_USER", "admin")
	adminPass := utils.SafeEnv("QUIZDECK_ADMIN_PASSWORD", "admin")
	if err := api.EnsureAdmin(store, adminUser, adminPass); err != nil {
		log.Fatalf("seed admin error: %v", err)
	}
	if os.Getenv("QUIZDECK_SEED") == "1" && len(store.ListTests()) == 0 {
		api.SeedSampleTests(store)
		log.Printf("seeded sample tests")
	}

	r := mux.NewRouter()
	api.NewRouter(store).Register(r)
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"name": "Quizdeck API",
		})
	})

	// Serve the built frontend when a static dir is configured.
	if staticDir := os.Getenv("QUIZDECK_STATIC_DIR"); staticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.CORS(middleware.SecureHeaders(middleware.NoStore(middleware.WithAuth(r))))

	log.Printf("Quizdeck server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// openStore picks the backend: sqlite when QUIZDECK_DB_PATH is set,
// process memory otherwise.
func openStore() (api.Store, error) {
	dbPath := os.Getenv("QUIZDECK_DB_PATH")
	if dbPath == "" {
		log.Printf("QUIZDECK_DB_PATH not set, using in-memory store")
		return api.NewMemoryStore(), nil
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?cache=shared&_busy_timeout=5000", filepath.ToSlash(dbPath))
	sqliteDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := dbstore.RunMigrations(sqliteDB, os.Getenv("QUIZDECK_MIGRATIONS_DIR")); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return dbstore.NewStore(sqliteDB)
}
