package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/pagekit/internal/host"
)

func countingPlugin(name string, calls *int) host.Plugin {
	return host.NewPlugin(name, func(context.Context, host.Context) error {
		*calls++
		return nil
	})
}

func TestPluginRegistry_RegistersInOrder(t *testing.T) {
	e := New()
	defer e.Close()
	ctx := context.Background()

	for _, name := range []string{"inject", "block", "SchemaPlugin"} {
		require.NoError(t, e.Plugins().Register(ctx, host.Noop(name)))
	}

	require.Equal(t, []string{"inject", "block", "SchemaPlugin"}, e.Plugins().Names())
	require.True(t, e.Plugins().Has("block"))
	require.False(t, e.Plugins().Has("missing"))
}

func TestPluginRegistry_IdempotentByName(t *testing.T) {
	e := New()
	defer e.Close()
	ctx := context.Background()

	calls := 0
	p := countingPlugin("editor-init", &calls)
	require.NoError(t, e.Plugins().Register(ctx, p))
	require.NoError(t, e.Plugins().Register(ctx, p))

	require.Equal(t, 1, calls, "init must run once per name")
	require.Equal(t, []string{"editor-init"}, e.Plugins().Names())
}

func TestPluginRegistry_StrictRejectsDuplicate(t *testing.T) {
	e := New(WithStrictPlugins(true))
	defer e.Close()
	ctx := context.Background()

	require.NoError(t, e.Plugins().Register(ctx, host.Noop("saveSample")))
	err := e.Plugins().Register(ctx, host.Noop("saveSample"))
	require.ErrorIs(t, err, ErrPluginExists)
	require.Contains(t, err.Error(), "saveSample")
}

func TestPluginRegistry_FailedInitNotRecorded(t *testing.T) {
	e := New()
	defer e.Close()
	ctx := context.Background()

	boom := errors.New("boom")
	err := e.Plugins().Register(ctx, host.NewPlugin("flaky", func(context.Context, host.Context) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)
	require.False(t, e.Plugins().Has("flaky"))

	// A later attempt under the same name is allowed.
	require.NoError(t, e.Plugins().Register(ctx, host.Noop("flaky")))
	require.True(t, e.Plugins().Has("flaky"))
}

func TestPluginRegistry_InvalidDescriptor(t *testing.T) {
	e := New()
	defer e.Close()

	require.ErrorIs(t, e.Plugins().Register(context.Background(), host.Plugin{Name: "x"}), host.ErrNilInit)
	require.ErrorIs(t, e.Plugins().Register(context.Background(), host.Plugin{}), host.ErrEmptyPluginName)
}

func TestPluginRegistry_CancelledContext(t *testing.T) {
	e := New()
	defer e.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := e.Plugins().Register(ctx, countingPlugin("late", &calls))
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, calls)
}

func TestPluginRegistry_InitReceivesHostContext(t *testing.T) {
	e := New(WithConfig(host.MapConfig{"currentPage": "about"}))
	defer e.Close()

	var got any
	err := e.Plugins().Register(context.Background(), host.NewPlugin("reader", func(_ context.Context, hc host.Context) error {
		got, _ = hc.Config.Get("currentPage")
		_, err := hc.Skeleton.Add(host.WidgetConfig{Area: host.AreaTop, Name: "logo"})
		return err
	}))
	require.NoError(t, err)
	require.Equal(t, "about", got)

	_, ok := e.Skeleton().Widget("logo")
	require.True(t, ok)
}

func TestPluginRegistry_NestedRegistration(t *testing.T) {
	e := New()
	defer e.Close()
	ctx := context.Background()

	outer := host.NewPlugin("outer", func(ctx context.Context, _ host.Context) error {
		return e.Plugins().Register(ctx, host.Noop("inner"))
	})
	require.NoError(t, e.Plugins().Register(ctx, outer))
	require.Equal(t, []string{"inner", "outer"}, e.Plugins().Names())
}

func TestPluginRegistry_Property_NamesUniqueAndFirstSeenOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New()
		defer e.Close()

		names := rapid.SliceOf(rapid.IntRange(0, 6)).Draw(t, "names")
		var want []string
		seen := make(map[string]bool)
		for _, n := range names {
			name := fmt.Sprintf("plugin-%d", n)
			if err := e.Plugins().Register(context.Background(), host.Noop(name)); err != nil {
				t.Fatalf("register %s: %v", name, err)
			}
			if !seen[name] {
				seen[name] = true
				want = append(want, name)
			}
		}

		got := e.Plugins().Names()
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})
}
