package utils

import (
	"context"
	"docpoint-service/internal/pkg/constvars"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "DCPNT_SVC_abc")
	assert.Equal(t, "DCPNT_SVC_abc", GetRequestID(ctx))

	assert.Empty(t, GetRequestID(context.Background()), "no request id in context")
}

func TestLogOperation_PassesErrorThrough(t *testing.T) {
	opErr := errors.New("repository down")
	err := LogOperation(zap.NewNop(), "op", "req-1", func() error {
		return opErr
	})
	assert.ErrorIs(t, err, opErr)

	err = LogOperation(zap.NewNop(), "op", "req-1", func() error {
		return nil
	})
	assert.NoError(t, err)
}
