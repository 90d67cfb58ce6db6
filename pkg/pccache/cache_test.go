package pccache

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestGetOrFetchOnce(t *testing.T) {
	c := New(log.New(io.Discard))
	var calls int32
	fetch := func(ctx context.Context, pkg string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		return []string{"/usr/lib/pkgconfig/" + pkg + ".pc"}, nil
	}
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		got, err := c.GetOrFetch(ctx, "sdl2", fetch)
		require.NoError(t, err)
		if diff := cmp.Diff([]string{"/usr/lib/pkgconfig/sdl2.pc"}, got); diff != "" {
			t.Errorf("GetOrFetch diff (-want +got):\n%s", diff)
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls=%d; want 1", calls)
	}
}

func TestGetOrFetchConcurrent(t *testing.T) {
	c := New(log.New(io.Discard))
	var calls int32
	release := make(chan struct{})
	fetch := func(ctx context.Context, pkg string) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{pkg + ".pc"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			files, err := c.GetOrFetch(context.Background(), "gl", fetch)
			if err != nil || len(files) != 1 {
				t.Errorf("GetOrFetch=%v, %v; want [gl.pc], nil", files, err)
			}
		}()
	}
	close(release)
	wg.Wait()
	if calls != 1 {
		t.Errorf("fetch calls=%d; want 1", calls)
	}
}

func TestGetOrFetchFailureCachedEmpty(t *testing.T) {
	c := New(log.New(io.Discard))
	var calls int
	fetch := func(ctx context.Context, pkg string) ([]string, error) {
		calls++
		return []string{"partial"}, errors.New("dpkg-query: exit status 1")
	}
	ctx := context.Background()

	files, err := c.GetOrFetch(ctx, "broken", fetch)
	require.Error(t, err)
	require.Empty(t, files)

	files, err = c.GetOrFetch(ctx, "broken", fetch)
	require.NoError(t, err)
	require.Empty(t, files)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, c.Len())
}
