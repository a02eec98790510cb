package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://10.0.0.1/api", "-i", "10", "-s", "/tmp/s.db", "-l", "debug"},
			want: Config{ServerBaseURL: "http://10.0.0.1/api", PollInterval: 10 * time.Second, StoragePath: "/tmp/s.db", LogLevel: "debug"},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-c", "cfg.json", "-x", "-a", "http://h/api"},
			want: Config{ServerBaseURL: "http://h/api"},
		},
		{
			name:    "incorrect poll interval",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.want, *cfg))
		})
	}
}

func TestParseFlags_UnsetIntervalKeepsSubSecondValue(t *testing.T) {
	cfg := &Config{PollInterval: 1500 * time.Millisecond}
	require.NoError(t, parseFlags(cfg, []string{"-a", "http://h/api"}))
	assert.Equal(t, 1500*time.Millisecond, cfg.PollInterval)
}
