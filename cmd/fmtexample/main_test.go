package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with an isolated home directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeIn(t, t.TempDir(), args...)
}

// executeIn runs the root command with home as the home directory, so
// successive calls can share a config file.
func executeIn(t *testing.T, home string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVariantsCommand(t *testing.T) {
	path := writeFile(t, "in.vcf", "##fileformat=VCFv4.2\n")

	out, err := execute(t, "variants", "--min-quality", "30", path)
	require.NoError(t, err)
	assert.Contains(t, out, "quality_threshold: 30")
	assert.Contains(t, out, "variants: []")
}

func TestVariantsCommand_DefaultThreshold(t *testing.T) {
	path := writeFile(t, "in.vcf", "")

	out, err := execute(t, "variants", path)
	require.NoError(t, err)
	assert.Contains(t, out, "quality_threshold: 20")
}

func TestVariantsCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "variants", filepath.Join(t.TempDir(), "missing.vcf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VCF file not found")
}

func TestStatsCommand(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\tb\n1\t4\n2\t5\n3\t6\n")

	out, err := execute(t, "stats", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, path+"\t3.5\t1\t3\t-", lines[1])
}

func TestStatsCommand_Cache(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\n1\n3\n")
	cachePath := filepath.Join(t.TempDir(), "stats.duckdb")

	out, err := execute(t, "stats", "--cache", "--cache-path", cachePath, path)
	require.NoError(t, err)
	assert.Contains(t, out, path+"\t2\t1.41421\t2\t-")

	out, err = execute(t, "stats", "--cache", "--cache-path", cachePath, path)
	require.NoError(t, err)
	assert.Contains(t, out, path+"\t2\t1.41421\t2\tYES")
}

func TestStatsCommand_Unparseable(t *testing.T) {
	path := writeFile(t, "empty.tsv", "")

	_, err := execute(t, "stats", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse")
}

func TestFixturesCommand(t *testing.T) {
	out, err := execute(t, "fixtures")
	require.NoError(t, err)
	assert.Contains(t, out, "sum: 15")
	assert.Contains(t, out, "message: Docstring formatting demonstration")
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo", "--data", filepath.Join(t.TempDir(), "none.tsv"))
	require.NoError(t, err)
	assert.Contains(t, out, "Testing formatting tools...")
	assert.Contains(t, out, "Result: 15")
}

func TestRunExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Equal(t, ExitUsage, run([]string{"variants"}))
	assert.Equal(t, ExitUsage, run([]string{"no-such-command"}))
	assert.Equal(t, ExitUsage, run([]string{"stats", "--no-such-flag", "x.tsv"}))
	assert.Equal(t, ExitUsage, run([]string{"variants", "--min-quality"}))
	assert.Equal(t, ExitUsage, run([]string{"config", "set", "min_quality", "abc"}))
	assert.Equal(t, ExitError, run([]string{"variants", filepath.Join(t.TempDir(), "missing.vcf")}))
	assert.Equal(t, ExitSuccess, run([]string{"fixtures"}))
}

func TestArgErrorsAreUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"no-such-command"}},
		{"missing vcf argument", []string{"variants"}},
		{"extra fixtures argument", []string{"fixtures", "extra"}},
		{"stats without files", []string{"stats"}},
		{"unknown flag", []string{"demo", "--bogus"}},
		{"config get without key", []string{"config", "get"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			var ue usageError
			assert.True(t, errors.As(err, &ue), "expected usage error, got %v", err)
		})
	}
}

func TestStatsCommand_HeaderOnly(t *testing.T) {
	path := writeFile(t, "header.tsv", "a\tb\n")

	out, err := execute(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+"\t-\t-\t0\t-")
}

func TestStatsCommand_VerboseCacheHit(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\n1\n3\n")
	cachePath := filepath.Join(t.TempDir(), "stats.duckdb")

	_, err := execute(t, "stats", "--cache", "--cache-path", cachePath, path)
	require.NoError(t, err)

	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"stats", "-v", "--cache", "--cache-path", cachePath, path})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "\tYES")
	assert.Contains(t, errOut.String(), "Calculated statistics: {mean: 2, std: 1.41421")
}

func TestStatsCommand_ClearCache(t *testing.T) {
	path := writeFile(t, "data.tsv", "a\n1\n3\n")
	cachePath := filepath.Join(t.TempDir(), "stats.duckdb")

	_, err := execute(t, "stats", "--cache", "--cache-path", cachePath, path)
	require.NoError(t, err)

	out, err := execute(t, "stats", "--clear-cache", "--cache-path", cachePath)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = execute(t, "stats", "--cache", "--cache-path", cachePath, path)
	require.NoError(t, err)
	assert.Contains(t, out, path+"\t2\t1.41421\t2\t-")
}

func TestConfigSetGetShow(t *testing.T) {
	home := t.TempDir()

	out, err := executeIn(t, home, "config", "set", "min_quality", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Set min_quality = 30")
	_, err = os.Stat(filepath.Join(home, ".fmtexample.yaml"))
	require.NoError(t, err)

	out, err = executeIn(t, home, "config", "get", "min_quality")
	require.NoError(t, err)
	assert.Equal(t, "30\n", out)

	out, err = executeIn(t, home, "config", "set", "cache.enabled", "yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Set cache.enabled = yes")

	out, err = executeIn(t, home, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "min_quality: 30")
	assert.Contains(t, out, "enabled: true")

	vcf := writeFile(t, "in.vcf", "")
	out, err = executeIn(t, home, "variants", vcf)
	require.NoError(t, err)
	assert.Contains(t, out, "quality_threshold: 30")
}

func TestConfigSet_RejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"min_quality", "abc"},
		{"min_quality", "2.5"},
		{"verbose", "maybe"},
		{"cache.enabled", "sometimes"},
		{"log.level", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			home := t.TempDir()
			_, err := executeIn(t, home, "config", "set", tt.key, tt.value)
			require.Error(t, err)
			var ue usageError
			assert.True(t, errors.As(err, &ue))

			_, statErr := os.Stat(filepath.Join(home, ".fmtexample.yaml"))
			assert.True(t, os.IsNotExist(statErr), "config file must not be written")
		})
	}
}

func TestConfigGet_Unset(t *testing.T) {
	_, err := execute(t, "config", "get", "no.such.key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not set")
}

func TestParseConfigValue(t *testing.T) {
	v, err := parseConfigValue("min_quality", "42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = parseConfigValue("verbose", "off")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	v, err = parseConfigValue("log.level", "debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", v)

	v, err = parseConfigValue("custom.key", "on")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = parseConfigValue("custom.key", "text")
	require.NoError(t, err)
	assert.Equal(t, "text", v)
}
