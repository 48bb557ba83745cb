package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		wantErr           bool
		want              *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `server:
  base_url: https://api.example.uz/api
list:
  page_size: 25
`,
			useExplicitPath: false,
			want: &Config{
				Server: Server{BaseURL: "https://api.example.uz/api"},
				List:   List{PageSize: 25},
			},
		},
		{
			name:            "missing config file uses defaults",
			configContent:   "",
			useExplicitPath: false,
			want: &Config{
				Server: Server{BaseURL: "http://localhost:8080"},
				List:   List{PageSize: 10},
			},
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `server:
  base_url: https://api.example.uz/api
`,
			useExplicitPath: false,
			want: &Config{
				Server: Server{BaseURL: "https://api.example.uz/api"},
				List:   List{PageSize: 10},
			},
		},
		{
			name: "explicit config file path",
			configContent: `server:
  base_url: https://explicit.example.uz
`,
			useExplicitPath: true,
			want: &Config{
				Server: Server{BaseURL: "https://explicit.example.uz"},
				List:   List{PageSize: 10},
			},
		},
		{
			name: "environment variable overrides the file",
			configContent: `server:
  base_url: https://file.example.uz
`,
			useExplicitPath: true,
			env:             map[string]string{"DICTADMIN_BASE_URL": "https://env.example.uz"},
			want: &Config{
				Server: Server{BaseURL: "https://env.example.uz"},
				List:   List{PageSize: 10},
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  base_url: https://api.example.uz
  invalid yaml format here [[[
`,
			useExplicitPath: false,
			wantErr:         true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "invalid base url rejected",
			configContent: `server:
  base_url: not-a-url
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"base_url",
			},
		},
		{
			name: "non-positive page size rejected",
			configContent: `list:
  page_size: 0
`,
			useExplicitPath: true,
			wantErr:         true,
			wantErrorContains: []string{
				"invalid configuration",
				"page_size",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				err := os.WriteFile(configPath, []byte(tt.configContent), 0644)
				require.NoError(t, err)
			} else {
				if tt.configContent != "" {
					err := os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644)
					require.NoError(t, err)
				}

				originalDir, err := os.Getwd()
				require.NoError(t, err)
				defer func() {
					err := os.Chdir(originalDir)
					require.NoError(t, err)
				}()

				err = os.Chdir(tempDir)
				require.NoError(t, err)
				configPath = ""
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
