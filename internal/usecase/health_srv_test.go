package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubHealth map[string]error

func (s stubHealth) Check(ctx context.Context) map[string]error { return s }

func TestHealthServiceAlive(t *testing.T) {
	svc := NewHealthService(stubHealth{})
	assert.Equal(t, "ITS ALIVE!!!", svc.Alive().Message)
}

func TestHealthServiceReady(t *testing.T) {
	svc := NewHealthService(stubHealth{"database": nil, "storage": nil})

	resp, ready := svc.Ready(context.Background())
	assert.True(t, ready)
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, map[string]string{"database": "ok", "storage": "ok"}, resp.Checks)
}

func TestHealthServiceNotReady(t *testing.T) {
	svc := NewHealthService(stubHealth{"database": errors.New("refused"), "storage": nil})

	resp, ready := svc.Ready(context.Background())
	assert.False(t, ready)
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "unavailable", resp.Checks["database"])
	assert.Equal(t, "ok", resp.Checks["storage"])
}
