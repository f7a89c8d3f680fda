// internal/intake/recorder/surface_test.go
package recorder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySurface_EnsureHeaderOnce(t *testing.T) {
	surface := NewMemorySurface()

	require.NoError(t, surface.EnsureHeader(context.Background()))
	require.NoError(t, surface.EnsureHeader(context.Background()))

	cells := surface.Cells()
	require.Len(t, cells, 1)
	assert.Equal(t, HeaderColumns, cells[0])
}

func TestMemorySurface_RowsRoundTrip(t *testing.T) {
	surface := NewMemorySurface()
	require.NoError(t, surface.EnsureHeader(context.Background()))

	rec := testRecord()
	require.NoError(t, surface.Append(context.Background(), rec))

	got, err := surface.Rows(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec, got[0])
}

func TestMemorySurface_RowsEmpty(t *testing.T) {
	surface := NewMemorySurface()
	require.NoError(t, surface.EnsureHeader(context.Background()))

	got, err := surface.Rows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
