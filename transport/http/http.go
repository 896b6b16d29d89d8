package http

import (
	"agenda/config"
	"agenda/shared/constant"
	"agenda/transport/http/response"
	"agenda/transport/http/router"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	state  atomic.Int32
	mux    *chi.Mux
	once   sync.Once
}

func New(cfg *config.Config, r router.Router) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve blocks until the server has shut down after SIGINT or SIGTERM.
func (h *HTTP) Serve() error {
	handler := h.Handler()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           handler,
		ReadTimeout:       time.Duration(h.Config.Server.ReadTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(h.Config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(h.Config.Server.WriteTimeoutSeconds) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting up HTTP server.")

		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err //nolint:wrapcheck
	case <-ctx.Done():
	}

	h.drain()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(h.Config.Server.Shutdown.CleanupPeriodSeconds+1)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")

	return nil
}

// Handler builds the routes once. It is also used by serverless entry points.
func (h *HTTP) Handler() http.Handler {
	h.once.Do(func() {
		h.mux = chi.NewRouter()
		h.Router.SetupRoutes(h.mux)
		h.mux.Get("/health", h.health)
		h.setState(ServerStateReady)
	})

	return h.mux
}

// drain keeps serving while /health reports 503 so load balancers stop routing here.
func (h *HTTP) drain() {
	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
}
