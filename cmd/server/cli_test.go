package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecotrack/govdash/internal/export"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against a fresh database file.
func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GOVDASH_CONFIG_PATH", "")
	t.Setenv("GOVDASH_DB_PATH", dbPath)
	t.Setenv("GOVDASH_LOG_LEVEL", "error")
	t.Setenv("GOVDASH_LOG_PATH", filepath.Join(filepath.Dir(dbPath), "govdash.log"))

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportEmissions_ToFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "report.csv")

	stdout, err := runCLI(t, filepath.Join(dir, "govdash.db"), "export", "emissions", "-o", output)
	require.NoError(t, err)
	require.Contains(t, stdout, "wrote "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 9)
	require.Equal(t, `"Company","Sector","Current Emissions","Emission Limit","Status"`, lines[0])
}

func TestExportRegistrations_ToFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "pending.xlsx")

	_, err := runCLI(t, filepath.Join(dir, "govdash.db"), "export", "registrations", "--output", output)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	rows, err := export.ReadSheet(f, "Pending Companies")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	require.Equal(t, "John Doe", rows[1][0])
}

func TestOperatorAdd_PrintsToken(t *testing.T) {
	dir := t.TempDir()

	stdout, err := runCLI(t, filepath.Join(dir, "govdash.db"), "operator", "add", "--name", "inspector")
	require.NoError(t, err)
	require.Len(t, strings.TrimSpace(stdout), 36)
}

func TestOperatorAdd_RequiresName(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, filepath.Join(dir, "govdash.db"), "operator", "add")
	require.Error(t, err)
}

func TestOperatorAdd_RejectsBlankName(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "govdash.db")

	for _, name := range []string{"", "   "} {
		stdout, err := runCLI(t, dbPath, "operator", "add", "--name", name)
		require.ErrorContains(t, err, "must not be blank")
		require.NotContains(t, stdout, "-")
	}
	_, err := os.Stat(dbPath)
	require.True(t, os.IsNotExist(err), "no database should be opened for a rejected name")
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOVDASH_TRANSPORT", "carrier-pigeon")

	_, err := runCLI(t, filepath.Join(dir, "govdash.db"), "export", "emissions", "-o", "-")
	require.ErrorContains(t, err, "config")
}
