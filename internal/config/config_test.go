package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadOptionalMissingFileReturnsDefault(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadDecodesScalarFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "run.toml", `
wheel_size = 64
ticks = 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.EqualValues(t, 64, cfg.WheelSize)
	require.EqualValues(t, 10, cfg.Ticks)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.toml", `not = [valid`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadResolvesNetworkFile(t *testing.T) {
	dir := t.TempDir()
	netPath := writeFile(t, dir, "net.toml", `
[[neuron]]
threshold = 1.0
[[neuron]]
threshold = 1.0

[[edge]]
sources = [0]
targets = [1]
weight = 1.0
delay = 1
`)
	runPath := writeFile(t, dir, "run.toml", `
wheel_size = 32
network_file = "`+netPath+`"
`)

	cfg, err := Load(runPath)
	require.NoError(t, err)
	require.Len(t, cfg.Network.Neurons, 2)
	require.Len(t, cfg.Network.Edges, 1)
}

func TestBuildConstructsRuntimeFromNetwork(t *testing.T) {
	cfg := Default()
	cfg.WheelSize = 16
	cfg.Network.Neurons = []NeuronSpec{{Threshold: 1.0}, {Threshold: 1.0}}
	cfg.Network.Edges = []EdgeSpec{{Sources: []uint32{0}, Targets: []uint32{1}, Weight: 1.0, Delay: 1}}

	rt, err := Build(cfg)
	require.NoError(t, err)
	require.Equal(t, 2, rt.NeuronsCount())
	require.Contains(t, rt.Adjacency(0), uint32(0))
}

func TestBuildPropagatesEdgeConstructionError(t *testing.T) {
	cfg := Default()
	cfg.Network.Neurons = []NeuronSpec{{Threshold: 1.0}}
	cfg.Network.Edges = []EdgeSpec{{Sources: []uint32{0}, Targets: nil, Weight: 1.0, Delay: 1}}

	_, err := Build(cfg)
	require.Error(t, err)
}

func TestBuildInstallsDefaultedPlasticity(t *testing.T) {
	cfg := Default()
	cfg.Network.Neurons = []NeuronSpec{{Threshold: 1.0}, {Threshold: 1.0}}
	cfg.Network.Edges = []EdgeSpec{{Sources: []uint32{0}, Targets: []uint32{1}, Weight: 0.5, Delay: 1}}
	cfg.Plasticity = Plasticity{Enabled: true}

	rt, err := Build(cfg)
	require.NoError(t, err)
	require.True(t, rt.PlasticityEnabled())
}

func TestBuildAppliesConfiguredBudgets(t *testing.T) {
	cfg := Default()
	cfg.Budgets = Budgets{MaxEdgeVisits: 5}

	rt, err := Build(cfg)
	require.NoError(t, err)
	require.NotNil(t, rt.Budgets().MaxEdgeVisits)
	require.Equal(t, 5, *rt.Budgets().MaxEdgeVisits)
	require.Nil(t, rt.Budgets().MaxSpikesScheduled)
}
