package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httpctx "github.com/Deba69/BookList/internal/api/http/context"
	"github.com/Deba69/BookList/internal/api/http/handler"
	"github.com/Deba69/BookList/internal/api/http/router"
	httpServer "github.com/Deba69/BookList/internal/api/http/server"
	"github.com/Deba69/BookList/internal/catalog"
	"github.com/Deba69/BookList/internal/config"
	"github.com/Deba69/BookList/internal/logger"
	"github.com/Deba69/BookList/internal/model"
	"github.com/Deba69/BookList/internal/password"
	"github.com/Deba69/BookList/internal/repository/boltdb"
	"github.com/Deba69/BookList/internal/repository/postgres"
	"github.com/Deba69/BookList/internal/server"
	"github.com/Deba69/BookList/internal/service"
	storage "github.com/Deba69/BookList/internal/storage/minio"
	"github.com/Deba69/BookList/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores groups the persistence backends selected by DATABASE_DRIVER.
type stores struct {
	users       model.UserStore
	reviews     model.ReviewStore
	revocations model.RevocationStore
	health      handler.Pinger
	closer      io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer st.closer.Close()

	var archive model.ReviewArchive
	if cfg.Storage.Enabled {
		a, err := storage.NewArchive(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize review archive", "error", err)
		}
		archive = a
	}

	kdf := password.NewKDFParams(cfg.KDF.Time, cfg.KDF.MemKiB, cfg.KDF.Par)
	hasher := password.NewArgon2(kdf)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	authService := service.NewAuth(st.users, st.revocations, hasher, tokenManager, logger)
	reviewService := service.NewReview(st.reviews, archive, logger)
	catalogService := service.NewCatalog(
		catalog.NewOpenLibrary(cfg.Catalog.BaseURL, cfg.Catalog.CoversBaseURL, cfg.Catalog.Timeout),
		logger,
	)

	r := router.New(router.Services{
		Auth:     authService,
		Reviews:  reviewService,
		Catalog:  catalogService,
		Identity: authService,
		Store:    st.health,
	}, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	}, httpctx.NewManager(), logger)

	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg config.Database) (stores, error) {
	switch cfg.Driver {
	case "bolt":
		conn, err := boltdb.Open(cfg.BoltPath)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users:       boltdb.NewUserRepository(conn),
			reviews:     boltdb.NewReviewRepository(conn),
			revocations: boltdb.NewRevocationRepository(conn),
			health:      conn,
			closer:      conn,
		}, nil
	default:
		conn, err := postgres.NewConnection(ctx, cfg.DSN)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users:       postgres.NewUserRepository(conn),
			reviews:     postgres.NewReviewRepository(conn),
			revocations: postgres.NewRevocationRepository(conn),
			health:      conn,
			closer:      conn,
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
