package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/jbweber/homelab/nettree/internal/inventory"
)

// NetworkRepository stores inventory networks keyed by name.
//
// The inventory graph has no locking of its own, so the repository never
// hands out references to stored state: networks are cloned on the way in
// and on the way out. Callers mutate their copy and Save it back, or use
// Update for an atomic read-modify-write.
type NetworkRepository interface {
	Repository[*inventory.Network, string]

	// Create stores a network whose name is not yet taken
	// Returns ErrDuplicate if the name exists
	Create(ctx context.Context, network *inventory.Network) (*inventory.Network, error)

	// Update applies fn to a copy of the named network and stores the copy
	// only if fn succeeds
	Update(ctx context.Context, name string, fn func(*inventory.Network) error) (*inventory.Network, error)

	// Names returns the stored network names in sorted order
	Names(ctx context.Context) ([]string, error)
}

// memoryNetworkRepository implements NetworkRepository
type memoryNetworkRepository struct {
	mu       sync.RWMutex
	networks map[string]*inventory.Network
}

// NewNetworkRepository creates an empty in-memory network repository
func NewNetworkRepository() NetworkRepository {
	return &memoryNetworkRepository{
		networks: make(map[string]*inventory.Network),
	}
}

// Save creates or replaces a network
func (r *memoryNetworkRepository) Save(ctx context.Context, network *inventory.Network) (*inventory.Network, error) {
	if err := validateNetwork(network); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.networks[network.Name()] = network.Clone()
	return network.Clone(), nil
}

// Create stores a new network
func (r *memoryNetworkRepository) Create(ctx context.Context, network *inventory.Network) (*inventory.Network, error) {
	if err := validateNetwork(network); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.networks[network.Name()]; ok {
		return nil, fmt.Errorf("network %s: %w", network.Name(), ErrDuplicate)
	}

	r.networks[network.Name()] = network.Clone()
	return network.Clone(), nil
}

// FindByID retrieves a copy of a network by its name
func (r *memoryNetworkRepository) FindByID(ctx context.Context, name string) (*inventory.Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	network, ok := r.networks[name]
	if !ok {
		return nil, fmt.Errorf("network with name %s: %w", name, ErrNotFound)
	}
	return network.Clone(), nil
}

// FindAll retrieves copies of all networks ordered by name
func (r *memoryNetworkRepository) FindAll(ctx context.Context) ([]*inventory.Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	networks := make([]*inventory.Network, 0, len(r.networks))
	for _, name := range slices.Sorted(maps.Keys(r.networks)) {
		networks = append(networks, r.networks[name].Clone())
	}
	return networks, nil
}

// DeleteByID removes a network by its name
func (r *memoryNetworkRepository) DeleteByID(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.networks[name]; !ok {
		return fmt.Errorf("network with name %s: %w", name, ErrNotFound)
	}
	delete(r.networks, name)
	return nil
}

// ExistsByID checks if a network exists by its name
func (r *memoryNetworkRepository) ExistsByID(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.networks[name]
	return ok, nil
}

// Update runs fn against a copy of the stored network while holding the
// write lock. The stored network is replaced only when fn returns nil.
func (r *memoryNetworkRepository) Update(ctx context.Context, name string, fn func(*inventory.Network) error) (*inventory.Network, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.networks[name]
	if !ok {
		return nil, fmt.Errorf("network with name %s: %w", name, ErrNotFound)
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}

	r.networks[name] = working
	return working.Clone(), nil
}

// Names returns all stored network names in sorted order
func (r *memoryNetworkRepository) Names(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.networks)), nil
}

// validateNetwork rejects networks that cannot be keyed
func validateNetwork(network *inventory.Network) error {
	if network == nil {
		return fmt.Errorf("network is nil: %w", ErrInvalidEntity)
	}
	if network.Name() == "" {
		return fmt.Errorf("network name is required: %w", ErrInvalidEntity)
	}
	return nil
}
