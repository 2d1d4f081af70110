package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eonsim/simulator/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestValidate_RejectsZeroThreads(t *testing.T) {
	c := config.Default()
	c.Threads = 0
	require.ErrorIs(t, c.Validate(), config.ErrNoThreads)
}

func TestValidate_RejectsEmptyInputOrOutput(t *testing.T) {
	c := config.Default()
	c.Input = ""
	require.ErrorIs(t, c.Validate(), config.ErrNoInput)

	c = config.Default()
	c.Output = ""
	require.ErrorIs(t, c.Validate(), config.ErrNoOutput)
}
