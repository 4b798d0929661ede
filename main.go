package main

import (
	batch "Photon/internal/calc/batch"
	importer "Photon/internal/calc/importer"
	photo "Photon/internal/calc/photo"
	report "Photon/internal/calc/report"
	"Photon/internal/config"
	"Photon/internal/logger"
	"Photon/internal/ratelimit"
	repo "Photon/internal/repo"
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, history repo.Repository, log zerolog.Logger) {
	limiter := ratelimit.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	photoH := &photo.Handler{Repo: history, Log: log}
	batchH := &batch.Handler{}
	reportH := &report.Handler{}
	importH := &importer.Handler{}

	api.HandleFunc("/calc", photoH.Calc).Methods("POST")
	api.HandleFunc("/history", photoH.History).Methods("GET")
	api.HandleFunc("/materials", batchH.Materials).Methods("GET")
	api.HandleFunc("/report/pdf", reportH.Generate).Methods("GET")
	api.HandleFunc("/report/xlsx", importH.Export).Methods("GET")
	api.HandleFunc("/import", importH.Import).Methods("POST")
}

func openHistory(ctx context.Context, cfg config.Config, log zerolog.Logger) (repo.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Info().Msg("DATABASE_URL not set, keeping history in memory")
		return repo.NewMemoryHistory(), func() {}, nil
	}
	db, err := repo.InitDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	pg := repo.NewPostgresHistoryDB(db)
	if err := pg.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return pg, func() { db.Close() }, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		l := logger.NewConsole("info")
		l.Fatal().Err(err).Msg("config")
	}
	log := logger.New(os.Stderr, cfg.LogLevel).With().Str("component", "api").Logger()

	history, closeHistory, err := openHistory(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("history database unavailable")
	}
	defer closeHistory()

	mux := mux.NewRouter()
	HandleList(mux, cfg, history, log)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info().Str("addr", cfg.Addr).Bool("tls", cfg.UseTLS()).Msg("starting server")
		var err error
		if cfg.UseTLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	wg.Wait()
	log.Info().Msg("server stopped")
}
