package connect

import (
	"context"

	"connectrpc.com/connect"

	"github.com/pitabwire/localize"
)

// LanguageInterceptor implements connect.Interceptor to make the request's
// language preferences available in the handler context.
type LanguageInterceptor struct {
}

// NewLanguageInterceptor creates a language interceptor with default options.
func NewLanguageInterceptor() (*LanguageInterceptor, error) {
	return &LanguageInterceptor{}, nil
}

// WrapUnary stores the request header language in the unary handler context.
func (l *LanguageInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		languages := localize.ExtractLanguageFromHTTPHeader(req.Header())

		ctx = localize.ToContext(ctx, languages)

		return next(ctx, req)
	}
}

// WrapStreamingClient is a pass-through for server side use.
func (l *LanguageInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler stores the request header language in the streaming
// handler context.
func (l *LanguageInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		languages := localize.ExtractLanguageFromHTTPHeader(conn.RequestHeader())

		ctx = localize.ToContext(ctx, languages)

		return next(ctx, conn)
	}
}
