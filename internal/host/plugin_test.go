package host

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlugin_WithNameDoesNotMutateOriginal(t *testing.T) {
	p := Noop("schema")
	renamed := p.WithName("SchemaPlugin")

	require.Equal(t, "schema", p.Name)
	require.Equal(t, "SchemaPlugin", renamed.Name)
	require.NotNil(t, renamed.Init)
}

func TestPlugin_Validate(t *testing.T) {
	require.ErrorIs(t, Plugin{Init: Noop("x").Init}.Validate(), ErrEmptyPluginName)
	require.ErrorIs(t, Plugin{Name: "x"}.Validate(), ErrNilInit)
	require.NoError(t, Noop("x").Validate())
}

func TestNoop_InitSucceeds(t *testing.T) {
	require.NoError(t, Noop("x").Init(context.Background(), Context{}))
}

func TestArea_Valid(t *testing.T) {
	for _, a := range Areas() {
		require.True(t, a.Valid(), a)
	}
	require.False(t, Area("sideArea").Valid())
	require.False(t, Area("").Valid())
}
