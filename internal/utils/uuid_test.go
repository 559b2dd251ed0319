package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GenerateIsV7(t *testing.T) {
	id, err := uuid.Parse(NewUUIDGenerator().Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "empty", incoming: ""},
		{name: "uuid reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "free text replaced", incoming: "my-custom-trace-id"},
		{name: "log injection replaced", incoming: "abc\n{\"level\":\"error\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TraceID(tt.incoming)

			_, err := uuid.Parse(got)
			require.NoError(t, err)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}
