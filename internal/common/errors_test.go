package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	assert.Equal(t, "CONFIG_ERROR: DB_URL is required: invalid input", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestGRPCErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
		msg  string
	}{
		{"invalid argument", InvalidArgumentError("external_id is required"), codes.InvalidArgument, "external_id is required"},
		{"invalid argument formatted", InvalidArgumentErrorf("field %q is not RFC 3339", "created_from"), codes.InvalidArgument, `field "created_from" is not RFC 3339`},
		{"not found", NotFoundError("legislation not found"), codes.NotFound, "legislation not found"},
		{"internal", InternalError("export failed"), codes.Internal, "export failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := status.FromError(tt.err)
			require.True(t, ok)
			assert.Equal(t, tt.code, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
