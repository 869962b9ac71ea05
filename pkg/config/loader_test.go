package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passcheck/pkg/config"
)

type appConfig struct {
	Addr    string        `env:"APP_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Lang    string        `env:"DEFAULT_LANG,required"`
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	var cfg appConfig
	require.NoError(t, config.LoadFrom(&cfg, map[string]string{
		"DEFAULT_LANG":     "fa",
		"SHUTDOWN_TIMEOUT": "2s",
	}))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "fa", cfg.Lang)

	var missing appConfig
	assert.ErrorIs(t, config.LoadFrom(&missing, map[string]string{}), config.ErrParsingConfig)

	assert.ErrorIs(t, config.LoadFrom[appConfig](nil, nil), config.ErrNilPointer)
}

type cachedConfig struct {
	Value string `env:"PASSCHECK_TEST_VALUE" envDefault:"default"`
}

func TestLoadCaches(t *testing.T) {
	config.Reset()
	t.Setenv("PASSCHECK_TEST_VALUE", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	t.Setenv("PASSCHECK_TEST_VALUE", "second")
	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)

	config.Reset()
	var c cachedConfig
	require.NoError(t, config.Load(&c))
	assert.Equal(t, "second", c.Value)

	assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)
}
