package server

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// loggingInterceptor logs every call with its peer, protocol and outcome.
type loggingInterceptor struct {
	logger *slog.Logger
}

func newLoggingInterceptor(logger *slog.Logger) *loggingInterceptor {
	return &loggingInterceptor{logger: logger.With("component", "rpc")}
}

func (i *loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		attrs := []any{
			"procedure", req.Spec().Procedure,
			"peer", req.Peer().Addr,
			"protocol", req.Peer().Protocol,
			"duration", time.Since(start),
		}
		if err != nil {
			i.logger.Warn("rpc error", append(attrs, "code", connect.CodeOf(err).String(), "error", err)...)
		} else {
			i.logger.Debug("rpc call", attrs...)
		}
		return resp, err
	}
}

func (i *loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		attrs := []any{
			"procedure", conn.Spec().Procedure,
			"peer", conn.Peer().Addr,
			"protocol", conn.Peer().Protocol,
		}
		i.logger.Debug("stream started", attrs...)
		err := next(ctx, conn)
		attrs = append(attrs, "duration", time.Since(start))
		if err != nil {
			i.logger.Warn("stream error", append(attrs, "code", connect.CodeOf(err).String(), "error", err)...)
		} else {
			i.logger.Debug("stream ended", attrs...)
		}
		return err
	}
}
