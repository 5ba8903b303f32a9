package twindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTailwindManifest(t *testing.T, root, contents string) {
	t.Helper()
	dir := filepath.Join(root, "node_modules", "tailwindcss")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(contents), 0o644))
}

func TestCheckTailwindVersion(t *testing.T) {
	tests := []struct {
		name     string
		manifest string // empty = not installed
		wantErr  string
	}{
		{
			name:     "accepted major",
			manifest: `{"name":"tailwindcss","version":"3.4.1"}`,
		},
		{
			name:     "wrong major",
			manifest: `{"name":"tailwindcss","version":"2.2.19"}`,
			wantErr:  "only v3 is supported",
		},
		{
			name:     "future major",
			manifest: `{"name":"tailwindcss","version":"4.0.0"}`,
			wantErr:  "only v3 is supported",
		},
		{
			name:    "not installed",
			wantErr: "not installed",
		},
		{
			name:     "malformed manifest",
			manifest: `{not json`,
			wantErr:  "unreadable",
		},
		{
			name:     "missing version field",
			manifest: `{"name":"tailwindcss"}`,
			wantErr:  "declares no version",
		},
		{
			name:     "unparseable version",
			manifest: `{"version":"not-a-version"}`,
			wantErr:  "invalid tailwindcss version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.manifest != "" {
				writeTailwindManifest(t, root, tt.manifest)
			}

			err := CheckTailwindVersion(root)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *VersionError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
