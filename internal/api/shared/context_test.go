package shared

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var traceIDPattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.Regexp(t, traceIDPattern, traceID)

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other, "trace ids should be unique")
}

func TestGetTraceID_Missing(t *testing.T) {
	assert.Equal(t, "", GetTraceID(context.Background()))

	wrongType := context.WithValue(context.Background(), TraceIDKey, 42)
	assert.Equal(t, "", GetTraceID(wrongType))
}
