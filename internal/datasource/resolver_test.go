package datasource

import (
	"context"
	"sync"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belphemur/hypersql/internal/driver"
	"github.com/belphemur/hypersql/internal/signals"
)

func TestResolve_DefaultDriver(t *testing.T) {
	r := NewResolver(driver.NewDefaultRegistry())

	res, err := r.Resolve(context.Background(), "main", driver.Properties{"database": "mydb"})
	require.NoError(t, err)
	assert.Equal(t, Result{Name: "main", Driver: "Hypersql", URL: "jdbc:hsqldb:mem:mydb;create=true"}, res)
}

func TestResolve_DriverNameIsCaseInsensitive(t *testing.T) {
	r := NewResolver(driver.NewDefaultRegistry())

	res, err := r.Resolve(context.Background(), "main", driver.Properties{"driver": "hypersql", "database": "mydb"})
	require.NoError(t, err)
	assert.Equal(t, "Hypersql", res.Driver)
}

func TestResolve_UnknownDriver(t *testing.T) {
	r := NewResolver(driver.NewDefaultRegistry())

	_, err := r.Resolve(context.Background(), "main", driver.Properties{"driver": "oracle", "database": "mydb"})
	require.Error(t, err)
	assert.ErrorIs(t, err, driver.ErrDriverMissing)
	assert.Contains(t, err.Error(), "datasource main")
}

func TestResolve_ValidationErrorIsWrapped(t *testing.T) {
	r := NewResolver(driver.NewDefaultRegistry())

	_, err := r.Resolve(context.Background(), "broken", driver.Properties{"database": "mydb", "protocol": "http"})
	require.Error(t, err)
	assert.ErrorIs(t, err, driver.ErrInvalidConfig)
	assert.Equal(t, driver.KindMissingHost, driver.KindOf(err))
	assert.Contains(t, err.Error(), "datasource broken")
}

func TestResolve_EmitsRedactedSignal(t *testing.T) {
	var mu sync.Mutex
	var received []signals.DatasourceResolvedData
	signals.OnDatasourceResolved(func(ctx context.Context, data signals.DatasourceResolvedData) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, data)
	}, "resolver-test")
	t.Cleanup(func() { signals.OffDatasourceResolved("resolver-test") })

	r := NewResolver(driver.NewDefaultRegistry())
	res, err := r.Resolve(context.Background(), "secure", driver.Properties{
		"database": "mydb",
		"username": "sa",
		"password": "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "jdbc:hsqldb:mem:mydb;create=true;user=sa;password=secret", res.URL)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "secure", received[0].Name)
	assert.Equal(t, "Hypersql", received[0].Driver)
	assert.Equal(t, "jdbc:hsqldb:mem:mydb;create=true;user=sa;password=****", received[0].URL)
}

func TestResolveAll_CollectsFailures(t *testing.T) {
	r := NewResolver(driver.NewDefaultRegistry())

	results, err := r.ResolveAll(context.Background(), map[string]driver.Properties{
		"b-ok":      {"database": "b"},
		"a-ok":      {"database": "a", "protocol": "file"},
		"no-db":     {},
		"bad-proto": {"database": "x", "protocol": "ftp"},
	})
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	require.Len(t, results, 2)
	assert.Equal(t, "a-ok", results[0].Name)
	assert.Equal(t, "jdbc:hsqldb:file:a;create=true", results[0].URL)
	assert.Equal(t, "b-ok", results[1].Name)
	assert.Equal(t, "jdbc:hsqldb:mem:b;create=true", results[1].URL)
}

func TestResolveAll_NoFailures(t *testing.T) {
	r := NewResolver(driver.NewDefaultRegistry())

	results, err := r.ResolveAll(context.Background(), map[string]driver.Properties{
		"main": {"database": "mydb"},
	})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
