package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"connectrpc.com/grpchealth"
	"connectrpc.com/otelconnect"
	"connectrpc.com/validate"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-canvas/api/drawingpb/drawingpbconnect"
	"go-canvas/utils"
)

type HandlerOptions struct {
	CORSAllow       []string
	MaxMessageBytes int
	// MetricsPath mounts the prometheus handler; empty leaves it off.
	MetricsPath string
	Tracing     bool
}

// Handler assembles the drawing service, standard gRPC health checks and
// metrics behind CORS. Requests breaking the protovalidate rules in
// drawing.proto are rejected before they reach the service.
func (s *Server) Handler(opts HandlerOptions) (http.Handler, error) {
	validateInterceptor, err := validate.NewInterceptor()
	if err != nil {
		return nil, fmt.Errorf("create validate interceptor: %w", err)
	}
	interceptors := []connect.Interceptor{newLoggingInterceptor(s.logger), validateInterceptor}
	if opts.Tracing {
		tracing, err := otelconnect.NewInterceptor()
		if err != nil {
			return nil, fmt.Errorf("create tracing interceptor: %w", err)
		}
		interceptors = append([]connect.Interceptor{tracing}, interceptors...)
	}

	handlerOpts := []connect.HandlerOption{connect.WithInterceptors(interceptors...)}
	if opts.MaxMessageBytes > 0 {
		handlerOpts = append(handlerOpts, connect.WithReadMaxBytes(opts.MaxMessageBytes))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	drawingPath, drawingHandler := drawingpbconnect.NewDrawingServiceHandler(s, handlerOpts...)
	r.Handle(drawingPath+"*", drawingHandler)

	healthPath, healthHandler := grpchealth.NewHandler(
		grpchealth.NewStaticChecker(drawingpbconnect.DrawingServiceName),
	)
	r.Handle(healthPath+"*", healthHandler)

	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.Handler())
	}

	return utils.WithCORS(opts.CORSAllow, r), nil
}

// ListenAndServe serves h on addr over HTTP/1.1 and cleartext HTTP/2 until
// ctx is done. Request contexts derive from ctx, so open streams end as soon
// as shutdown starts.
func (s *Server) ListenAndServe(ctx context.Context, addr string, h http.Handler, shutdownTimeout time.Duration) error {
	protocols := new(http.Protocols)
	protocols.SetHTTP1(true)
	protocols.SetUnencryptedHTTP2(true)

	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		Protocols:         protocols,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server.listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("server.shutdown.start")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	s.logger.Info("server.shutdown.complete")
	return nil
}
