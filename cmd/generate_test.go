package cmd

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-originshift/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate(t *testing.T) {
	t.Run("prints maze and seed", func(t *testing.T) {
		var out bytes.Buffer
		err := runGenerate(&out, maze.Config{Width: 4, Height: 3, Seed: 21}, false)
		require.NoError(t, err)

		m, _, err := maze.Generate(maze.Config{Width: 4, Height: 3, Seed: 21})
		require.NoError(t, err)
		assert.Equal(t, m.String()+"seed: 21\n", out.String())
	})

	t.Run("quiet prints only the seed", func(t *testing.T) {
		var out bytes.Buffer
		err := runGenerate(&out, maze.Config{Width: 2, Height: 1, Seed: 3}, true)
		require.NoError(t, err)
		assert.Equal(t, "seed: 3\n", out.String())
	})

	t.Run("drawn seed replays", func(t *testing.T) {
		var first bytes.Buffer
		err := runGenerate(&first, maze.Config{Width: 5, Height: 5, SeedFunc: func() int64 { return 99 }}, false)
		require.NoError(t, err)

		var second bytes.Buffer
		err = runGenerate(&second, maze.Config{Width: 5, Height: 5, Seed: 99}, false)
		require.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("invalid size", func(t *testing.T) {
		var out bytes.Buffer
		err := runGenerate(&out, maze.Config{Width: 1, Height: 1}, false)
		assert.ErrorIs(t, err, maze.ErrInvalidSize)
		assert.Empty(t, out.String())
	})
}

func TestGenerateCmd(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"generate", "3", "2", "--seed", "12", "--quiet"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "seed: 12\n", out.String())

	out.Reset()
	rootCmd.SetArgs([]string{"generate", "1", "1", "--seed", "12"})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, maze.ErrInvalidSize)

	rootCmd.SetArgs([]string{"generate", "three", "2"})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"generate", "3"})
	assert.Error(t, rootCmd.Execute())
}
