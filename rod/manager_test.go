//go:build integration

package rod_test

import (
	"testing"

	"github.com/fwojciec/wikisum/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Browser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		maxPages int64
		rendered int
		recycled bool
	}{
		{"keeps browser below the page budget", 5, 2, false},
		{"recycles once the budget is spent", 3, 3, true},
		{"never recycles with a zero budget", 0, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager, err := rod.NewBrowserManager(rod.WithMaxPages(tt.maxPages))
			require.NoError(t, err)
			defer manager.Close()

			before := manager.Browser()
			pid := manager.LauncherPID()
			for range tt.rendered {
				manager.IncrementPageCount()
			}
			after := manager.Browser()

			if tt.recycled {
				assert.NotSame(t, before, after)
				assert.NotEqual(t, pid, manager.LauncherPID())
			} else {
				assert.Same(t, before, after)
				assert.Equal(t, pid, manager.LauncherPID())
			}
		})
	}
}

func TestBrowserManager_RecycleHookReportsRenderedPages(t *testing.T) {
	t.Parallel()

	var reported []int64
	manager, err := rod.NewBrowserManager(
		rod.WithMaxPages(2),
		rod.WithRecycleHook(func(pages int64) { reported = append(reported, pages) }),
	)
	require.NoError(t, err)
	defer manager.Close()

	manager.IncrementPageCount()
	_ = manager.Browser()
	assert.Empty(t, reported)

	manager.IncrementPageCount()
	manager.IncrementPageCount()
	_ = manager.Browser()

	assert.Equal(t, []int64{3}, reported)
}

func TestBrowserManager_Close(t *testing.T) {
	t.Parallel()

	manager, err := rod.NewBrowserManager(rod.WithAutomationHidden())
	require.NoError(t, err)
	require.NotZero(t, manager.LauncherPID())

	require.NoError(t, manager.Close())
	require.NoError(t, manager.Close())
	assert.Zero(t, manager.LauncherPID(), "launcher should be released")
}
