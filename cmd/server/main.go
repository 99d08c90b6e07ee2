package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/wthidden/galaxy-one/internal/auth"
	"github.com/wthidden/galaxy-one/internal/config"
	"github.com/wthidden/galaxy-one/internal/game"
	srv "github.com/wthidden/galaxy-one/internal/server"
	"github.com/wthidden/galaxy-one/internal/store"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("bad configuration", "err", err)
		os.Exit(1)
	}

	tokens, err := auth.NewService(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		log.Error("auth setup failed", "err", err)
		os.Exit(1)
	}

	var st *store.Store
	if cfg.DBPath != "" {
		st, err = store.Open(cfg.DBPath)
		if err != nil {
			log.Error("open snapshot store", "path", cfg.DBPath, "err", err)
			os.Exit(1)
		}
		defer st.Close()
	}

	state, err := loadOrCreateState(st, cfg, log)
	if err != nil {
		log.Error("game state setup failed", "err", err)
		os.Exit(1)
	}

	gs := srv.New(state, st, tokens, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go gs.RunScheduler(ctx)

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	r.HandleFunc("/ws", gs.HandleWS)
	r.HandleFunc("/healthz", gs.HandleHealth).Methods("GET")
	r.Handle("/session", tokens.Middleware(http.HandlerFunc(gs.HandleSession))).Methods("GET")

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("galaxy-one listening", "addr", cfg.Addr, "map_size", cfg.MapSize)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
	log.Info("shut down cleanly")
}

// loadOrCreateState restores the latest snapshot, or generates a fresh
// galaxy when the store is empty or persistence is disabled.
func loadOrCreateState(st *store.Store, cfg config.Config, log *slog.Logger) (*game.State, error) {
	if st != nil {
		snap, err := st.LoadLatest()
		if err == nil {
			state, err := game.Restore(snap)
			if err != nil {
				return nil, err
			}
			log.Info("restored snapshot", "game_turn", state.GameTurn)
			return state, nil
		}
		if !errors.Is(err, store.ErrNoSnapshot) {
			return nil, err
		}
	}

	state := game.NewState(cfg.MapSize)
	state.TurnDuration = cfg.TurnDuration
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := state.GenerateGalaxy(rng); err != nil {
		return nil, err
	}
	log.Info("generated new galaxy", "worlds", cfg.MapSize)
	return state, nil
}
