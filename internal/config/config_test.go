package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, 8008, cfg.Port)
	require.Equal(t, "sqlite", cfg.DatabaseType)
	require.Equal(t, "app.sqlite", cfg.DatabaseURL)
	require.Equal(t, "memory", cfg.SessionBackend)
	require.Equal(t, "sha256", cfg.PasswordHasher)
	require.Equal(t, SortLexical, cfg.LeaderboardSort)
	require.Equal(t, 10, cfg.LeaderboardSize)
	require.False(t, cfg.LegacyRatingKey)
	require.Zero(t, cfg.SessionTTL)
	require.Equal(t, ":8008", cfg.Addr())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "from-env.sqlite")

	cfg, err := Load([]string{"-port", "7000", "-db", "from-flag.sqlite"})
	require.NoError(t, err)
	require.Equal(t, 7000, cfg.Port)
	require.Equal(t, "from-flag.sqlite", cfg.DatabaseURL)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LEADERBOARD_SORT", "numeric")
	t.Setenv("LEADERBOARD_SIZE", "5")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LEGACY_RATING_KEY", "true")
	t.Setenv("PASSWORD_HASHER", "bcrypt")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, SortNumeric, cfg.LeaderboardSort)
	require.Equal(t, 5, cfg.LeaderboardSize)
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.True(t, cfg.LegacyRatingKey)
	require.Equal(t, "bcrypt", cfg.PasswordHasher)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad port":     {"PORT", "abc"},
		"bad db type":  {"DATABASE_TYPE", "oracle"},
		"bad sort":     {"LEADERBOARD_SORT", "random"},
		"bad size":     {"LEADERBOARD_SIZE", "0"},
		"bad ttl":      {"SESSION_TTL", "soon"},
		"bad backend":  {"SESSION_BACKEND", "memcached"},
		"bad hasher":   {"PASSWORD_HASHER", "md5"},
		"bad legacy":   {"LEGACY_RATING_KEY", "maybe"},
		"out of range": {"PORT", "70000"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load(nil)
			require.Error(t, err)
		})
	}
}
