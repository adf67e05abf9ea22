package yaml_test

import (
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webmcp/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	Transport string        `default:"stdio"`
	Timeout   time.Duration `default:"30s"`
	RateLimit float64       `default:"0"`
	UserAgent string        `default:"ua"`
}

func parse(t *testing.T, config string, args ...string) (*testCLI, error) {
	t.Helper()

	resolver, err := yaml.Loader(strings.NewReader(config))
	require.NoError(t, err)

	var cli testCLI
	parser, err := kong.New(&cli, kong.Resolvers(resolver), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse(args)
	return &cli, err
}

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("resolves values with underscore keys", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "transport: http\ntimeout: 5s\nrate_limit: 2.5\n")

		require.NoError(t, err)
		assert.Equal(t, "http", cli.Transport)
		assert.Equal(t, 5*time.Second, cli.Timeout)
		assert.InDelta(t, 2.5, cli.RateLimit, 0.0001)
	})

	t.Run("resolves values with dashed keys", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "user-agent: custom-agent\n")

		require.NoError(t, err)
		assert.Equal(t, "custom-agent", cli.UserAgent)
	})

	t.Run("keeps defaults for missing keys", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "transport: http\n")

		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, cli.Timeout)
		assert.Equal(t, "ua", cli.UserAgent)
	})

	t.Run("lets flags override the file", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "transport: http\n", "--transport=stdio")

		require.NoError(t, err)
		assert.Equal(t, "stdio", cli.Transport)
	})

	t.Run("accepts an empty file", func(t *testing.T) {
		t.Parallel()

		cli, err := parse(t, "")

		require.NoError(t, err)
		assert.Equal(t, "stdio", cli.Transport)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Loader(strings.NewReader("transport: [http"))

		require.Error(t, err)
	})
}
