package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"docvault/internal/config"
	"docvault/internal/domain/repositories"
	"docvault/internal/handler"
	"docvault/internal/middleware"
	"docvault/internal/repository/blobfile"
	"docvault/internal/repository/jsonstore"
	"docvault/internal/repository/memory"
	"docvault/internal/repository/postgres"
	redisrepo "docvault/internal/repository/redis"
	serviceDocstore "docvault/internal/service/docstore"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"storage", cfg.Storage,
	)

	ctx := context.Background()

	blobs, cleanup, err := setupBlobStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup storage backend: %v", err)
	}
	defer cleanup()

	store := jsonstore.New(blobs)

	fileTypes, err := serviceDocstore.NewFileTypeRegistry()
	if err != nil {
		log.Fatalf("Failed to load file type registry: %v", err)
	}

	// Create services
	docService := serviceDocstore.NewDocumentService(store, fileTypes, logger)
	accessService := serviceDocstore.NewAccessService(store, logger)
	tagService := serviceDocstore.NewTagService(store, logger)
	versionService := serviceDocstore.NewVersionService(store, fileTypes, logger)
	folderService := serviceDocstore.NewFolderService(store, logger)
	treeService := serviceDocstore.NewTreeService(store, logger)
	annotationService := serviceDocstore.NewAnnotationService(store, logger)
	searchService := serviceDocstore.NewSearchService(store, logger)
	viewerService := serviceDocstore.NewViewerService(store, logger)
	navigationService := serviceDocstore.NewNavigationService(store, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, logger)
	accessHandler := handler.NewAccessHandler(accessService, logger)
	tagHandler := handler.NewTagHandler(tagService, logger)
	versionHandler := handler.NewVersionHandler(versionService, logger)
	folderHandler := handler.NewFolderHandler(folderService, treeService, logger)
	annotationHandler := handler.NewAnnotationHandler(annotationService, logger)
	searchHandler := handler.NewSearchHandler(searchService, logger)
	viewerHandler := handler.NewViewerHandler(viewerService, navigationService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", docHandler.HealthCheck)

	// Document routes
	mux.HandleFunc("POST /api/documents", docHandler.Upload)
	mux.HandleFunc("GET /api/documents", docHandler.List)
	mux.HandleFunc("GET /api/documents/search", searchHandler.Search) // Must come before {id} route
	mux.HandleFunc("POST /api/documents/move", folderHandler.MoveDocuments)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.Get)
	mux.HandleFunc("PATCH /api/documents/{id}", docHandler.Update)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.Delete)

	// Tag routes
	mux.HandleFunc("POST /api/documents/{id}/tags", tagHandler.Add)
	mux.HandleFunc("PUT /api/documents/{id}/tags", tagHandler.Set)
	mux.HandleFunc("DELETE /api/documents/{id}/tags", tagHandler.Remove)
	mux.HandleFunc("GET /api/tags", tagHandler.All)
	mux.HandleFunc("GET /api/tags/{tag}/documents", tagHandler.FindByTag)

	// Version routes
	mux.HandleFunc("POST /api/documents/{id}/versions", versionHandler.Create)
	mux.HandleFunc("GET /api/documents/{id}/versions", versionHandler.List)
	mux.HandleFunc("PUT /api/documents/{id}/versions/current", versionHandler.SetCurrent)
	mux.HandleFunc("GET /api/documents/{id}/versions/{versionId}", versionHandler.Get)
	mux.HandleFunc("DELETE /api/documents/{id}/versions/{versionId}", versionHandler.Delete)

	// Permission routes
	mux.HandleFunc("POST /api/documents/{id}/permissions", accessHandler.Grant)
	mux.HandleFunc("GET /api/documents/{id}/permissions", accessHandler.ListUsers)
	mux.HandleFunc("GET /api/documents/{id}/permissions/{userId}", accessHandler.Check)
	mux.HandleFunc("DELETE /api/documents/{id}/permissions/{userId}", accessHandler.Revoke)
	mux.HandleFunc("PUT /api/documents/{id}/owner", accessHandler.TransferOwnership)

	// Annotation routes
	mux.HandleFunc("POST /api/documents/{id}/annotations", annotationHandler.Add)
	mux.HandleFunc("GET /api/documents/{id}/annotations", annotationHandler.List)
	mux.HandleFunc("PATCH /api/documents/{id}/annotations/{annotationId}", annotationHandler.Update)
	mux.HandleFunc("DELETE /api/documents/{id}/annotations/{annotationId}", annotationHandler.Delete)

	// Viewer routes
	mux.HandleFunc("GET /api/documents/{id}/view", viewerHandler.View)
	mux.HandleFunc("GET /api/documents/{id}/download", viewerHandler.Download)
	mux.HandleFunc("GET /api/documents/{id}/preview", viewerHandler.Preview)
	mux.HandleFunc("GET /api/documents/{id}/views", viewerHandler.History)

	// Page navigation routes
	mux.HandleFunc("GET /api/documents/{id}/pages", viewerHandler.Pages)
	mux.HandleFunc("PUT /api/documents/{id}/pages/current", viewerHandler.SetCurrentPage)
	mux.HandleFunc("GET /api/documents/{id}/pages/{page}", viewerHandler.Page)
	mux.HandleFunc("GET /api/documents/{id}/pages/{page}/thumbnail", viewerHandler.Thumbnail)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.Create)
	mux.HandleFunc("GET /api/folders", folderHandler.List)
	mux.HandleFunc("GET /api/folders/tree", folderHandler.Tree)
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.Get)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.Update)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.Delete)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Identity → Routes
	root = middleware.Identity()(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "X-User-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupBlobStore builds the configured blob backend. The returned cleanup
// releases any held connections.
func setupBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.BlobStore, func(), error) {
	noop := func() {}

	switch cfg.Storage {
	case "memory":
		return memory.NewBlobStore(), noop, nil

	case "file":
		blobs, err := blobfile.NewBlobStore(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("file storage ready", "dir", cfg.DataDir)
		return blobs, noop, nil

	case "redis":
		blobs, err := redisrepo.NewBlobStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TablePrefix)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("redis storage ready", "addr", cfg.RedisAddr)
		return blobs, func() { blobs.Close() }, nil

	case "postgres":
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		blobs, err := postgres.NewBlobStore(ctx, pool, cfg.TablePrefix)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		logger.Info("postgres storage ready", "table_prefix", cfg.TablePrefix)
		return blobs, func() { pool.Close() }, nil

	default:
		return memory.NewBlobStore(), noop, nil
	}
}
