package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctorsportal/doctors-api/internal/store"
)

func TestSeedServices_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	created, err := seedServices(ctx, mem, defaultServices())
	require.NoError(t, err)
	assert.Equal(t, int64(len(defaultCatalogue)), created)

	created, err = seedServices(ctx, mem, defaultServices())
	require.NoError(t, err)
	assert.Equal(t, int64(0), created)

	services, err := mem.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, len(defaultCatalogue))
	for _, svc := range services {
		assert.Equal(t, defaultSlots, svc.Slots)
	}
}
