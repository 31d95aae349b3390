package config

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("VINOM_TEST_SET", "value")
	t.Setenv("VINOM_TEST_EMPTY", "")

	assert.Equal(t, "value", getEnvWithDefault("VINOM_TEST_SET", "fallback"))
	assert.Equal(t, "", getEnvWithDefault("VINOM_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", getEnvWithDefault("VINOM_TEST_UNSET", "fallback"))
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Setenv("VINOM_TEST_PORT", "9090")
	t.Setenv("VINOM_TEST_BLANK", "")

	assert.Equal(t, 9090, getEnvAsIntWithDefault("VINOM_TEST_PORT", 1))
	assert.Equal(t, 1, getEnvAsIntWithDefault("VINOM_TEST_BLANK", 1))
	assert.Equal(t, 1, getEnvAsIntWithDefault("VINOM_TEST_UNSET", 1))
}

func TestParseInt(t *testing.T) {
	_, err := parseInt("REST_PORT", "eighty")
	require.Error(t, err)

	var envErr *EnvError
	require.True(t, errors.As(err, &envErr))
	assert.Equal(t, "REST_PORT", envErr.Key)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), "REST_PORT")
}

func TestInitConfigDefaults(t *testing.T) {
	for _, key := range []string{"REDIS_ADDR", "TICKET_SECRET", "MAX_MAZE_DIMENSION", "REST_PORT"} {
		t.Setenv(key, "")
	}

	cfg := initConfig()
	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, "", cfg.TicketSecret)
	assert.Equal(t, 50, cfg.MaxMazeDimension)
	assert.Equal(t, 8080, cfg.RESTPort)
}
