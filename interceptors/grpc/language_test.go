package grpc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/pitabwire/localize"
	localizegrpc "github.com/pitabwire/localize/interceptors/grpc"
)

type InterceptorSuite struct {
	suite.Suite
}

func TestInterceptorSuite(t *testing.T) {
	suite.Run(t, new(InterceptorSuite))
}

// mockServerStream lets the stream interceptor be exercised without a live
// gRPC connection.
type mockServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (m *mockServerStream) Context() context.Context {
	return m.ctx
}

func (s *InterceptorSuite) TestLanguageUnaryInterceptor() {
	testCases := []struct {
		name         string
		metadataLang string
		expectedLang string
	}{
		{
			name:         "language metadata",
			metadataLang: "en",
			expectedLang: "en",
		},
		{
			name:         "swahili metadata",
			metadataLang: "sw",
			expectedLang: "sw",
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			interceptor := localizegrpc.LanguageUnaryInterceptor()
			handler := func(ctx context.Context, _ any) (any, error) {
				return strings.Join(localize.FromContext(ctx), ","), nil
			}

			md := metadata.New(map[string]string{"accept-language": tc.metadataLang})
			ctx := metadata.NewIncomingContext(context.Background(), md)

			result, err := interceptor(ctx, nil, nil, handler)
			s.Require().NoError(err)
			s.Contains(result.(string), tc.expectedLang)
		})
	}
}

func (s *InterceptorSuite) TestLanguageUnaryInterceptorWithoutMetadata() {
	interceptor := localizegrpc.LanguageUnaryInterceptor()
	handler := func(ctx context.Context, _ any) (any, error) {
		return localize.FromContext(ctx), nil
	}

	result, err := interceptor(context.Background(), nil, nil, handler)
	s.Require().NoError(err)
	s.Nil(result)
}

func (s *InterceptorSuite) TestLanguageStreamInterceptor() {
	interceptor := localizegrpc.LanguageStreamInterceptor()

	var seen []string
	handler := func(_ any, stream grpc.ServerStream) error {
		seen = localize.FromContext(stream.Context())
		return nil
	}

	md := metadata.New(map[string]string{"accept-language": "sw"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	err := interceptor(nil, &mockServerStream{ctx: ctx}, nil, handler)
	s.Require().NoError(err)
	s.Equal([]string{"sw"}, seen)
}
