package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbweber/homelab/nettree/internal/inventory"
	"github.com/jbweber/homelab/nettree/internal/testutil"
)

func TestNetworkRepository_Save(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, inventory.SampleNetwork())
	require.NoError(t, err)
	assert.Equal(t, "MISIS network", saved.Name())
	assert.Equal(t, testutil.SampleRendering, saved.String())

	// Saving again under the same name replaces the stored network
	_, err = repo.Save(ctx, inventory.NewNetwork("MISIS network"))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, "MISIS network")
	require.NoError(t, err)
	assert.Empty(t, found.Computers())
}

func TestNetworkRepository_Save_Invalid(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidEntity)

	_, err = repo.Save(ctx, inventory.NewNetwork(""))
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

func TestNetworkRepository_Save_StoresCopy(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	network := inventory.SampleNetwork()
	saved, err := repo.Save(ctx, network)
	require.NoError(t, err)

	// Neither the argument nor the returned value alias stored state
	network.AddComputer(inventory.NewComputer("late-1"))
	saved.AddComputer(inventory.NewComputer("late-2"))

	found, err := repo.FindByID(ctx, "MISIS network")
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleRendering, found.String())
}

func TestNetworkRepository_FindByID(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, testutil.NewTestNetwork("lab", 2))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, "lab")
	require.NoError(t, err)
	assert.Len(t, found.Computers(), 2)

	// Mutating the returned copy does not change the repository
	c, err := found.FindComputer("host-1")
	require.NoError(t, err)
	c.AddComponent(inventory.NewMemory(1024))

	again, err := repo.FindByID(ctx, "lab")
	require.NoError(t, err)
	c, err = again.FindComputer("host-1")
	require.NoError(t, err)
	assert.Equal(t, 2, c.ComponentCount())

	// Test not found
	_, err = repo.FindByID(ctx, "missing")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNetworkRepository_Create(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, testutil.NewTestNetwork("lab", 1))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testutil.NewTestNetwork("lab", 3))
	assert.ErrorIs(t, err, ErrDuplicate)

	found, err := repo.FindByID(ctx, "lab")
	require.NoError(t, err)
	assert.Len(t, found.Computers(), 1)
}

func TestNetworkRepository_FindAll(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		_, err := repo.Save(ctx, testutil.NewTestNetwork(name, 1))
		require.NoError(t, err)
	}

	networks, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, networks, 3)
	assert.Equal(t, "alpha", networks[0].Name())
	assert.Equal(t, "mike", networks[1].Name())
	assert.Equal(t, "zulu", networks[2].Name())

	names, err := repo.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, names)
}

func TestNetworkRepository_DeleteByID(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, testutil.NewTestNetwork("lab", 1))
	require.NoError(t, err)

	exists, err := repo.ExistsByID(ctx, "lab")
	require.NoError(t, err)
	assert.True(t, exists)

	err = repo.DeleteByID(ctx, "lab")
	require.NoError(t, err)

	exists, err = repo.ExistsByID(ctx, "lab")
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.DeleteByID(ctx, "lab")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNetworkRepository_Update(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, inventory.SampleNetwork())
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "MISIS network", func(n *inventory.Network) error {
		c, err := n.FindComputer("server2.misis.ru")
		if err != nil {
			return err
		}
		c.AddComponent(inventory.NewDisk(inventory.SSD, 500).AddPartition(500, "fast_storage"))
		return nil
	})
	require.NoError(t, err)

	c, err := updated.FindComputer("server2.misis.ru")
	require.NoError(t, err)
	assert.Equal(t, 3, c.ComponentCount())

	found, err := repo.FindByID(ctx, "MISIS network")
	require.NoError(t, err)
	c, err = found.FindComputer("server2.misis.ru")
	require.NoError(t, err)
	assert.Equal(t, 3, c.ComponentCount())
}

func TestNetworkRepository_Update_FailureKeepsStored(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, inventory.SampleNetwork())
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "MISIS network", func(n *inventory.Network) error {
		n.AddComputer(inventory.NewComputer("half-done"))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	found, err := repo.FindByID(ctx, "MISIS network")
	require.NoError(t, err)
	assert.Equal(t, testutil.SampleRendering, found.String())

	_, err = repo.Update(ctx, "missing", func(*inventory.Network) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNetworkRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewNetworkRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, testutil.NewTestNetwork("lab", 1))
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "lab", func(n *inventory.Network) error {
				c, err := n.FindComputer("host-1")
				if err != nil {
					return err
				}
				c.AddAddress("192.0.2.1")
				return nil
			})
			assert.NoError(t, err)
			_, err = repo.FindByID(ctx, "lab")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := repo.FindByID(ctx, "lab")
	require.NoError(t, err)
	c, err := found.FindComputer("host-1")
	require.NoError(t, err)
	assert.Len(t, c.Addresses(), workers+1)
}
