package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
)

type httpServer struct {
	name   string
	server *http.Server

	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, log *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// listen binds the listener so that bind errors surface before serving.
func (h *httpServer) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %w", ErrListen, h.name, h.server.Addr, err)
	}
	return ln, nil
}

func (h *httpServer) serve(ln net.Listener) error {
	h.logger.Info().Str("server", h.name).Str("address", ln.Addr().String()).Msg("listening")
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s serve: %w", h.name, err)
	}
	return nil
}

func (h *httpServer) shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s shutdown: %w", h.name, err)
	}
	h.logger.Info().Str("server", h.name).Msg("server shut down")
	return nil
}
