package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/pitabwire/localize"
)

// LanguageUnaryInterceptor extracts the language supplied via call metadata
// and sets it in the handler context.
func LanguageUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any,
		_ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		l := localize.ExtractLanguageFromGrpcRequest(ctx)
		if l != nil {
			ctx = localize.ToContext(ctx, l)
		}

		return handler(ctx, req)
	}
}

// LanguageStreamInterceptor extracts the language supplied via call metadata
// for streaming handlers.
func LanguageStreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		l := localize.ExtractLanguageFromGrpcRequest(ctx)
		if l == nil {
			return handler(srv, ss)
		}

		ctx = localize.ToContext(ctx, l)

		// The handler must receive a stream whose Context() carries the language.
		languageStream := &serverStreamWrapper{ctx: ctx, ServerStream: ss}

		return handler(srv, languageStream)
	}
}

// serverStreamWrapper overrides the stream context with the language aware one.
type serverStreamWrapper struct {
	ctx context.Context
	grpc.ServerStream
}

func (s *serverStreamWrapper) Context() context.Context {
	return s.ctx
}
