package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NIVESH_PLAN", "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestProjectCmd_DefaultPlan(t *testing.T) {
	out, err := run(t, "project", "--year", "2026", "--step", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "WEALTH PROJECTION  2027-2056")
	assert.Contains(t, out, "₹50,000")
	assert.Contains(t, out, "2031")
	assert.Contains(t, out, "2056")
}

func TestProjectCmd_WritesChart(t *testing.T) {
	chartPath := filepath.Join(t.TempDir(), "chart.png")

	out, err := run(t, "project", "--year", "2026", "--years", "10", "--chart", chartPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Chart written to")

	f, err := os.Open(chartPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, service.ChartWidth, img.Bounds().Dx())
}

func TestProjectCmd_HugeProjectionValues(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.toml")
	content := "investment_return_rate = 100.0\n\n[[income_sources]]\nname = \"Business\"\namount = 600000\n"
	require.NoError(t, os.WriteFile(planPath, []byte(content), 0o600))

	out, err := run(t, "project", "--plan", planPath, "--year", "2026")
	require.NoError(t, err)

	assert.Contains(t, out, "2056")
	assert.Contains(t, out, "₹6,00,000")
}

func TestProjectCmd_InvalidYears(t *testing.T) {
	_, err := run(t, "project", "--years", "0")
	assert.Error(t, err)
}

func TestGoalsCmd(t *testing.T) {
	out, err := run(t, "goals", "--year", "2026")
	require.NoError(t, err)

	assert.Contains(t, out, "GOALS  as of 2026")
	assert.Contains(t, out, "Emergency Fund")
	assert.Contains(t, out, "deadline passed")
}

func TestGoalsCmd_SingleGoal(t *testing.T) {
	out, err := run(t, "goals", "car_purchase", "--year", "2026")
	require.NoError(t, err)

	assert.Contains(t, out, "Car Purchase")
	assert.NotContains(t, out, "Retirement")
}

func TestGoalsCmd_UnknownGoal(t *testing.T) {
	_, err := run(t, "goals", "moon_base")
	assert.Error(t, err)
}

func TestWellnessCmd_WithPlanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[goals]]
id = "emergency_fund"
current_amount = 90000
`), 0o644))

	out, err := run(t, "wellness", "--plan", path)
	require.NoError(t, err)

	assert.Contains(t, out, "55/100 (good)")
}

func TestInflationCmd(t *testing.T) {
	out, err := run(t, "inflation", "--years", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "₹32,080")

	_, err = run(t, "inflation", "--years", "51")
	assert.Error(t, err)
}

func TestInitCmd(t *testing.T) {
	out, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "[[income_sources]]")
	assert.Contains(t, out, "investment_return_rate")

	path := filepath.Join(t.TempDir(), "plan.toml")
	_, err = run(t, "init", "--plan", path)
	require.NoError(t, err)

	_, err = run(t, "init", "--plan", path)
	assert.Error(t, err, "existing file is not overwritten without --force")

	_, err = run(t, "init", "--plan", path, "--force")
	assert.NoError(t, err)

	out, err = run(t, "goals", "--plan", path, "--year", "2026")
	require.NoError(t, err)
	assert.Contains(t, out, "Wealth Building")
}
