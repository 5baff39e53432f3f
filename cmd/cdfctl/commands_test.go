package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cdf-insights/internal/config"
	"cdf-insights/internal/models"
	"cdf-insights/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestSummaryCmd_JSON(t *testing.T) {
	out, err := execute(t, "summary", "-o", "json", "--category", models.CategoryBursaries)
	require.NoError(t, err)

	var summary models.DashboardSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Greater(t, summary.Overall.RecordCount, summary.Filtered.RecordCount)
	assert.Equal(t, summary.Filtered.RecordCount, summary.Filtered.BursaryCount)
	assert.Equal(t, "category=Bursaries", summary.Filters)
}

func TestSummaryCmd_Table(t *testing.T) {
	out, err := execute(t, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "FILTERS")
	assert.Contains(t, out, "total amount")
}

func TestTopCmd(t *testing.T) {
	out, err := execute(t, "top", "-n", "3", "-o", "yaml")
	require.NoError(t, err)

	var top []struct {
		Key    string `yaml:"key"`
		Amount string `yaml:"amount"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &top))
	require.Len(t, top, 3)
	for i := 1; i < len(top); i++ {
		prev := decimal.RequireFromString(top[i-1].Amount)
		cur := decimal.RequireFromString(top[i].Amount)
		assert.True(t, prev.GreaterThanOrEqual(cur), "ranked descending")
	}
}

func TestTopCmd_RejectsNonPositiveLimit(t *testing.T) {
	_, err := execute(t, "top", "-n", "0")
	assert.ErrorContains(t, err, "--limit")
}

func TestTotalsCmd_UnknownGrouping(t *testing.T) {
	_, err := execute(t, "totals", "--by", "ward")
	assert.ErrorIs(t, err, services.ErrUnknownGrouping)
}

func TestExportCmd(t *testing.T) {
	out, err := execute(t, "export", "--category", models.CategoryBursaries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "Constituency,Category,SubCategory,Amount", lines[0])
	for _, line := range lines[1:] {
		assert.Contains(t, line, ","+models.CategoryBursaries+",")
	}
}

func TestExportCmd_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdf.json")
	_, err := execute(t, "export", "-f", "json", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rows []map[string]string
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.NotEmpty(t, rows)
}

func TestExportCmd_Errors(t *testing.T) {
	_, err := execute(t, "export", "-f", "xlsx")
	assert.ErrorIs(t, err, services.ErrUnsupportedExportFormat)

	_, err = execute(t, "export", "--search", "no-such-constituency-anywhere")
	assert.ErrorIs(t, err, services.ErrNoDataToExport)
}

func TestTokenCmd(t *testing.T) {
	secret := "cli-test-secret-with-enough-bytes!!"
	t.Setenv("ADMIN_TOKEN_SECRET", secret)
	t.Setenv("ADMIN_TOKEN_ISSUER", "")

	out, err := execute(t, "token", "--subject", "ops", "-o", "json")
	require.NoError(t, err)

	var payload struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, models.RoleAdmin, payload.Role)

	tokens := services.NewTokenService(&config.SecurityConfig{AdminTokenSecret: secret, AdminTokenIssuer: "cdf-insights"})
	claims, err := tokens.ValidateToken(payload.Token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.True(t, claims.IsAdmin())
}

func TestTokenCmd_Errors(t *testing.T) {
	t.Setenv("ADMIN_TOKEN_SECRET", "")

	_, err := execute(t, "token")
	assert.ErrorIs(t, err, services.ErrSigningDisabled)

	_, err = execute(t, "token", "--role", "root")
	assert.ErrorContains(t, err, "--role")
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := execute(t, "summary", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
