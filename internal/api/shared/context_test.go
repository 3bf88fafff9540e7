package shared

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetTraceID(ctx))

	ctxWithTrace := SetTraceID(ctx)
	traceID := GetTraceID(ctxWithTrace)
	assert.Len(t, traceID, TraceIDLength)

	assert.Empty(t, GetTraceID(ctx), "original context must stay unchanged")
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123)
	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateTraceID(t *testing.T) {
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		assert.Len(t, id, TraceIDLength)
		_, err := hex.DecodeString(id)
		assert.NoError(t, err)
		assert.False(t, seen[id], "duplicate trace ID generated")
		seen[id] = true
	}
}

func TestGenerateFallbackTraceID(t *testing.T) {
	now := time.Now()
	id := generateFallbackTraceID(now)
	assert.Len(t, id, TraceIDLength)
	assert.NotEqual(t, id, generateFallbackTraceID(now.Add(time.Nanosecond)))
}
