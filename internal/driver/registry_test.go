package driver

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belphemur/hypersql/internal/signals"
)

type stubDriver struct {
	name string
}

func (s *stubDriver) Name() string      { return s.name }
func (s *stubDriver) Type() Type        { return TypeGeneric }
func (s *stubDriver) ClassName() string { return "org.example.Driver" }
func (s *stubDriver) BuildConnectionURL(props Properties) (string, error) {
	return "jdbc:stub", nil
}

func TestRegistry_DefaultHasHyperSQL(t *testing.T) {
	r := NewDefaultRegistry()

	d, err := r.Lookup("Hypersql")
	require.NoError(t, err)
	assert.Equal(t, TypeHypersonic, d.Type())

	d, err = r.Lookup("")
	require.NoError(t, err, "empty name should select HyperSQL")
	assert.Equal(t, "Hypersql", d.Name())

	_, err = r.Lookup("HYPERSQL")
	require.NoError(t, err)

	assert.Equal(t, []string{"Hypersql"}, r.Names())
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubDriver{name: "Stub"}))

	err := r.Register(&stubDriver{name: "stub"})
	assert.ErrorIs(t, err, ErrDriverExists)

	_, err = r.Lookup("missing")
	assert.ErrorIs(t, err, ErrDriverMissing)

	_, err = r.Lookup("")
	assert.ErrorIs(t, err, ErrDriverMissing, "empty registry has no default driver")
}

func TestRegistry_EmitsDriverRegistered(t *testing.T) {
	var mu sync.Mutex
	var names []string
	signals.OnDriverRegistered(func(ctx context.Context, data signals.DriverRegisteredData) {
		mu.Lock()
		defer mu.Unlock()
		names = append(names, data.Name)
	}, "registry-test")
	t.Cleanup(func() { signals.OffDriverRegistered("registry-test") })

	r := NewRegistry()
	require.NoError(t, r.Register(&stubDriver{name: "Signalled"}))

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, names, "Signalled")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewDefaultRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := r.Lookup("Hypersql")
			if assert.NoError(t, err) {
				url, err := d.BuildConnectionURL(Properties{"database": "mydb"})
				assert.NoError(t, err)
				assert.Equal(t, "jdbc:hsqldb:mem:mydb;create=true", url)
			}
		}()
	}
	wg.Wait()
}
