package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value kept",
			args:    []string{"-a", "http://x/api", "-v"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://x/api"},
		},
		{
			name:    "equals form kept",
			args:    []string{"--config=conf.json", "-z"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-x", "1", "-y=2"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-i", "5"},
			allowed: []string{"-a", "-i"},
			want:    []string{"-a", "-i", "5"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlags(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"cli", "-c", "conf.json", "-a", "http://x/api"}
	require.Equal(t, "conf.json", ConfigFileFlags())

	os.Args = []string{"cli", "-a", "http://x/api"}
	require.Equal(t, "", ConfigFileFlags())
}
