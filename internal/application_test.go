package application

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
	"github.com/rocketscienceinc/ai50-backend/internal/config"
	"github.com/rocketscienceinc/ai50-backend/testing/suite"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	conf, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	return conf
}

func TestRunHeredity(t *testing.T) {
	t.Run("Prints the posterior of every person", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a single founder on disk
		path := filepath.Join(t.TempDir(), "harry.csv")
		require.NoError(t, os.WriteFile(path, []byte("name,mother,father,trait\nHarry,,,\n"), 0o600))

		// When: running the heredity pipeline
		var out bytes.Buffer
		err := RunHeredity(ctx, st.Logger, testConfig(t), path, &out)

		// Then: the prior should be printed
		require.NoError(t, err)
		assert.Equal(t, "Harry:\n  Gene:\n    2: 0.0100\n    1: 0.0300\n    0: 0.9600\n  Trait:\n    True: 0.0329\n    False: 0.9671\n", out.String())
	})

	t.Run("Rejects malformed records", func(t *testing.T) {
		ctx, st := suite.New(t)

		path := filepath.Join(t.TempDir(), "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte("name,mother,father,trait\nHarry,Lily,,\nLily,,,\n"), 0o600))

		err := RunHeredity(ctx, st.Logger, testConfig(t), path, &bytes.Buffer{})

		require.ErrorIs(t, err, apperror.ErrMalformedPersonRecord)
	})
}

func TestRunTicTacToe(t *testing.T) {
	ctx, st := suite.New(t)
	conf := testConfig(t)
	conf.TicTacToe.HumanMark = "O"

	var out bytes.Buffer
	err := RunTicTacToe(ctx, st.Logger, conf, strings.NewReader("0 0\n0 1\n0 2\n1 0\n1 1\n1 2\n2 0\n2 1\n2 2\n"), &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Game over: X wins.")
}
