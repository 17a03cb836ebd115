package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SetupFailuresReturnError(t *testing.T) {
	err := run([]string{"-db-type", "oracle"})
	require.ErrorContains(t, err, "load configuration")

	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	err = run([]string{"-db", t.TempDir() + "/app.sqlite"})
	require.ErrorContains(t, err, "server setup")
}
