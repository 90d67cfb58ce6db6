package pkgconfig

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/platform/platformtest"
)

func TestFlags(t *testing.T) {
	r := platformtest.New("pkg-config").
		On("pkg-config --cflags --libs sdl2", "-D_REENTRANT -I/usr/include/SDL2 -lSDL2\n").
		On("pkg-config --cflags --libs freeglut glut", "-lglut\n")
	c := New(r, log.New(io.Discard))
	ctx := context.Background()

	require.True(t, c.Available())

	got, err := c.Flags(ctx, "sdl2")
	require.NoError(t, err)
	assert.Equal(t, "-D_REENTRANT -I/usr/include/SDL2 -lSDL2", got)

	got, err = c.Flags(ctx, "freeglut", "glut")
	require.NoError(t, err)
	assert.Equal(t, "-lglut", got)
}

func TestFlagsFailure(t *testing.T) {
	r := platformtest.New("pkg-config").
		On("pkg-config --cflags --libs empty", "  \n").
		Fail("pkg-config --cflags --libs nope", errors.New("exit status 1"))
	c := New(r, log.New(io.Discard))
	ctx := context.Background()

	for _, name := range []string{"empty", "nope"} {
		_, err := c.Flags(ctx, name)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrToolInvocation))
		assert.False(t, core.IsFatal(err))
	}
}

func TestFlagsIn(t *testing.T) {
	r := platformtest.New("pkg-config").On("pkg-config --cflags --libs sdl2", "-lSDL2")
	c := New(r, log.New(io.Discard))

	_, err := c.FlagsIn(context.Background(), "/usr/local/Cellar/sdl2/2.0.9/lib/pkgconfig", "sdl2")
	require.NoError(t, err)

	cmd, ok := r.LastCmd("pkg-config")
	require.True(t, ok)
	assert.Equal(t, []string{"PKG_CONFIG_PATH=/usr/local/Cellar/sdl2/2.0.9/lib/pkgconfig"}, cmd.Env)
	assert.Equal(t, "PKG_CONFIG_PATH=/usr/local/Cellar/sdl2/2.0.9/lib/pkgconfig pkg-config --cflags --libs sdl2", cmd.String())
}

func TestUnavailable(t *testing.T) {
	c := New(platformtest.New(), log.New(io.Discard))
	assert.False(t, c.Available())
}

func TestQueryErrorMessage(t *testing.T) {
	r := platformtest.New("pkg-config").On("pkg-config --cflags --libs sdl2", "")
	c := New(r, log.New(io.Discard))

	_, err := c.FlagsIn(context.Background(), "/opt/pc", "sdl2")
	require.Error(t, err)
	assert.Equal(t, "this command failed to run:\nPKG_CONFIG_PATH=/opt/pc pkg-config --cflags --libs sdl2", err.Error())
}
