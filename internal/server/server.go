// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-indie-chat/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Listener names one HTTP surface to serve. Listeners with an empty Address
// are skipped.
type Listener struct {
	Name    string
	Address string
	Handler http.Handler
}

type server struct {
	servers []*httpServer
	logger  *logger.Logger
}

// NewServer creates a [Server] for every listener with a non-empty address.
func NewServer(log *logger.Logger, listeners ...Listener) (Server, error) {
	log.Info().Msg("creating new server...")

	s := &server{logger: log}
	for _, l := range listeners {
		if l.Address == "" || l.Handler == nil {
			continue
		}
		s.servers = append(s.servers, newHTTPServer(l.Name, l.Address, l.Handler, log))
	}

	if len(s.servers) == 0 {
		return nil, ErrNoListeners
	}
	return s, nil
}

// Run implements [Server].
func (s *server) Run(ctx context.Context) error {
	listeners := make([]net.Listener, 0, len(s.servers))
	for _, srv := range s.servers {
		ln, err := srv.listen()
		if err != nil {
			for _, opened := range listeners {
				_ = opened.Close()
			}
			return err
		}
		listeners = append(listeners, ln)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for i, srv := range s.servers {
		g.Go(func() error {
			return srv.serve(listeners[i])
		})
	}

	// listen for stop signals or a failed listener
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	s.logger.Info().Msg("server shut down gracefully")
	return err
}

// Shutdown implements [Server].
func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		if err := srv.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
