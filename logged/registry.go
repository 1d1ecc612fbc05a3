package logged

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrInvalidHostName is returned when a host name cannot be used as a table name part
	ErrInvalidHostName = errors.New("invalid host name")
	// ErrUnknownHostType is returned when looking up a host type that was never registered
	ErrUnknownHostType = errors.New("unknown host type")
	// ErrHostNotFound is returned when a log entry targets a host that does not exist
	ErrHostNotFound = errors.New("host not found")
)

// ExistsFunc reports whether a host with the given ID exists
type ExistsFunc func(ctx context.Context, hostID int64) (bool, error)

var reHostName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// HostType describes an entity type that has been given log trails
type HostType struct {
	Name          string `json:"name"`
	RelationTable string `json:"relation_table"`
}

// ValidHostName reports whether name can be part of a relation table name
func ValidHostName(name string) bool {
	return reHostName.MatchString(name)
}

// RelationTable returns the name of the table linking hosts of the given type
// to their log entries
func RelationTable(hostName string) string {
	return fmt.Sprintf("nm_%s_logs", strings.ToLower(hostName))
}

// Registry holds the host types registered at startup
type Registry struct {
	mu     sync.RWMutex
	hosts  map[string]HostType
	exists map[string]ExistsFunc
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		hosts:  make(map[string]HostType),
		exists: make(map[string]ExistsFunc),
	}
}

// Register gives the named entity type log trails. Registering the same name
// again returns the existing host type.
func (r *Registry) Register(name string) (HostType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !ValidHostName(name) {
		return HostType{}, fmt.Errorf("%w: %q", ErrInvalidHostName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if ht, ok := r.hosts[name]; ok {
		return ht, nil
	}

	ht := HostType{Name: name, RelationTable: RelationTable(name)}
	r.hosts[name] = ht
	return ht, nil
}

// Lookup returns the host type registered under the given name
func (r *Registry) Lookup(name string) (HostType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ht, ok := r.hosts[strings.ToLower(name)]
	if !ok {
		return HostType{}, fmt.Errorf("%w: %q", ErrUnknownHostType, name)
	}
	return ht, nil
}

// HostTypes returns all registered host types ordered by name
func (r *Registry) HostTypes() []HostType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]HostType, 0, len(r.hosts))
	for _, ht := range r.hosts {
		types = append(types, ht)
	}
	sort.Slice(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	return types
}

// SetExists attaches an existence check to a registered host type. Host types
// owned by another application have none and accept any ID.
func (r *Registry) SetExists(name string, fn ExistsFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.ToLower(name)
	if _, ok := r.hosts[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownHostType, name)
	}
	r.exists[name] = fn
	return nil
}

// HostExists reports whether the host can be given a log entry
func (r *Registry) HostExists(ctx context.Context, ht HostType, hostID int64) (bool, error) {
	r.mu.RLock()
	fn, ok := r.exists[ht.Name]
	r.mu.RUnlock()

	if !ok {
		return true, nil
	}
	return fn(ctx, hostID)
}
