package interceptors

import (
	"context"
	"testing"
	"time"

	"github.com/dmehra2102/todoboard/pkg/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const testSecret = "test-secret"

var protectedInfo = &grpc.UnaryServerInfo{FullMethod: "/todoboard.v1.TodoService/MoveItem"}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func withBearer(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

func TestAuthInterceptor_ValidToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"user_id": "u1",
		"roles":   []any{"user", 7},
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var got *auth.UserContext
	_, err := AuthInterceptor(testSecret)(withBearer(token), nil, protectedInfo,
		func(ctx context.Context, req any) (any, error) {
			var err error
			got, err = auth.UserContextFromContext(ctx)
			return nil, err
		})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, []string{"user"}, got.Roles)
}

func TestAuthInterceptor_Rejects(t *testing.T) {
	expired := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	noUser := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"roles": []any{"user"}})
	wrongKey := signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"user_id": "u1"})
	wrongAlg := signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"user_id": "u1"})

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "no metadata", ctx: context.Background()},
		{name: "no header", ctx: metadata.NewIncomingContext(context.Background(), metadata.MD{})},
		{name: "not bearer", ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic abc"))},
		{name: "expired", ctx: withBearer(expired)},
		{name: "missing user id", ctx: withBearer(noUser)},
		{name: "wrong key", ctx: withBearer(wrongKey)},
		{name: "wrong algorithm", ctx: withBearer(wrongAlg)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			_, err := AuthInterceptor(testSecret)(tt.ctx, nil, protectedInfo,
				func(ctx context.Context, req any) (any, error) {
					called = true
					return nil, nil
				})

			assert.False(t, called)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}
}

func TestAuthInterceptor_PublicMethod(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	resp, err := AuthInterceptor(testSecret)(context.Background(), nil, info,
		func(ctx context.Context, req any) (any, error) { return "ok", nil })

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestRecoveryInterceptor(t *testing.T) {
	_, err := RecoveryInterceptor(zaptest.NewLogger(t))(context.Background(), nil, protectedInfo,
		func(ctx context.Context, req any) (any, error) { panic("boom") })

	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(grpcPanicsTotal.WithLabelValues("todoboard.v1.TodoService", "MoveItem")))
}

func TestSplitMethodName(t *testing.T) {
	service, method := splitMethodName("/todoboard.v1.TodoService/ReorderItems")
	assert.Equal(t, "todoboard.v1.TodoService", service)
	assert.Equal(t, "ReorderItems", method)

	service, method = splitMethodName("weird")
	assert.Equal(t, "unknown", service)
	assert.Equal(t, "weird", method)
}

func TestMetricsInterceptor_CountsByCode(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/todoboard.v1.TodoService/GetItem"}
	counter := grpcRequestsTotal.WithLabelValues("todoboard.v1.TodoService", "GetItem", codes.NotFound.String())
	before := testutil.ToFloat64(counter)

	_, _ = MetricsInterceptor()(context.Background(), nil, info,
		func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.NotFound, "item not found")
		})

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, levelFor(codes.NotFound))
	assert.Equal(t, zapcore.WarnLevel, levelFor(codes.DeadlineExceeded))
	assert.Equal(t, zapcore.ErrorLevel, levelFor(codes.Internal))
}

func TestLoggingInterceptor_PropagatesRequestID(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDKey, "req-42"))

	var seen string
	_, err := LoggingInterceptor(zaptest.NewLogger(t))(ctx, nil, protectedInfo,
		func(ctx context.Context, req any) (any, error) {
			seen = RequestIDFromContext(ctx)
			return nil, nil
		})

	require.NoError(t, err)
	assert.Equal(t, "req-42", seen)
}

func TestLoggingInterceptor_GeneratesRequestID(t *testing.T) {
	var seen string
	_, _ = LoggingInterceptor(zaptest.NewLogger(t))(context.Background(), nil, protectedInfo,
		func(ctx context.Context, req any) (any, error) {
			seen = RequestIDFromContext(ctx)
			return nil, status.Error(codes.NotFound, "missing")
		})

	assert.NotEmpty(t, seen)
}

func TestTimeoutInterceptor(t *testing.T) {
	var deadline time.Time
	var ok bool
	_, err := TimeoutInterceptor(time.Second)(context.Background(), nil, protectedInfo,
		func(ctx context.Context, req any) (any, error) {
			deadline, ok = ctx.Deadline()
			return nil, nil
		})

	require.NoError(t, err)
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
}

func TestTimeoutInterceptor_KeepsTighterClientDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	want, _ := ctx.Deadline()

	_, err := TimeoutInterceptor(time.Minute)(ctx, nil, protectedInfo,
		func(ctx context.Context, req any) (any, error) {
			got, _ := ctx.Deadline()
			assert.Equal(t, want, got)
			return nil, nil
		})
	require.NoError(t, err)
}
