package logged

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationTable(t *testing.T) {
	assert.Equal(t, "nm_teammember_logs", RelationTable("TeamMember"))
	assert.Equal(t, "nm_order_logs", RelationTable("order"))
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	ht, err := registry.Register("TeamMember")
	require.NoError(t, err)
	assert.Equal(t, HostType{Name: "teammember", RelationTable: "nm_teammember_logs"}, ht)

	again, err := registry.Register("teammember")
	require.NoError(t, err)
	assert.Equal(t, ht, again)
	assert.Len(t, registry.HostTypes(), 1)
}

func TestRegistry_RegisterInvalidName(t *testing.T) {
	registry := NewRegistry()

	for _, name := range []string{"", "1st", "team member", "team;drop", "tëam"} {
		_, err := registry.Register(name)
		assert.ErrorIs(t, err, ErrInvalidHostName, "name %q", name)
	}
	assert.Empty(t, registry.HostTypes())
}

func TestRegistry_Lookup(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Register("order")
	require.NoError(t, err)
	_, err = registry.Register("customer")
	require.NoError(t, err)

	ht, err := registry.Lookup("Order")
	require.NoError(t, err)
	assert.Equal(t, "nm_order_logs", ht.RelationTable)

	_, err = registry.Lookup("invoice")
	assert.ErrorIs(t, err, ErrUnknownHostType)

	types := registry.HostTypes()
	require.Len(t, types, 2)
	assert.Equal(t, "customer", types[0].Name)
	assert.Equal(t, "order", types[1].Name)
}

func TestRegistry_HostExists(t *testing.T) {
	registry := NewRegistry()
	member, err := registry.Register("teammember")
	require.NoError(t, err)
	order, err := registry.Register("order")
	require.NoError(t, err)

	require.NoError(t, registry.SetExists("TeamMember", func(_ context.Context, hostID int64) (bool, error) {
		if hostID == 13 {
			return false, errors.New("database is locked")
		}
		return hostID == 1, nil
	}))

	ok, err := registry.HostExists(context.Background(), member, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = registry.HostExists(context.Background(), member, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = registry.HostExists(context.Background(), member, 13)
	assert.EqualError(t, err, "database is locked")

	// no check registered
	ok, err = registry.HostExists(context.Background(), order, 999)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistry_SetExistsUnknownHost(t *testing.T) {
	registry := NewRegistry()

	err := registry.SetExists("invoice", func(context.Context, int64) (bool, error) { return true, nil })
	assert.ErrorIs(t, err, ErrUnknownHostType)
}
