/*
Package config loads the driver shell's configuration: everything the core
engine packages (fixedpoint, timewheel, neuron, hyperedge, plasticity,
runtime) never see, because the core reads no files and no environment
(I/O-free boundary). Only cmd/snnctl imports this package.
*/
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/SynapticNetworks/snn-engine/plasticity"
	"github.com/SynapticNetworks/snn-engine/runtime"
)

// Network describes the static topology to build before simulating: a flat
// neuron list and edge list, read straight off the toml file. Neuron ids are
// positional (index into Neurons), matching runtime.Runtime's own id scheme.
type Network struct {
	Neurons []NeuronSpec `toml:"neuron"`
	Edges   []EdgeSpec   `toml:"edge"`
}

type NeuronSpec struct {
	Threshold float32 `toml:"threshold"`
}

type EdgeSpec struct {
	Sources []uint32 `toml:"sources"`
	Targets []uint32 `toml:"targets"`
	Weight  float32  `toml:"weight"`
	Delay   uint64   `toml:"delay"`
}

// Plasticity mirrors plasticity.QuantizedSTDP's tunables. Enabled defaults
// to false: a config file that omits [plasticity] entirely runs without it.
type Plasticity struct {
	Enabled  bool    `toml:"enabled"`
	APlus    float32 `toml:"a_plus"`
	AMinus   float32 `toml:"a_minus"`
	AlphaPre float32 `toml:"alpha_pre"`
	AlphaPost float32 `toml:"alpha_post"`
	WMin     float32 `toml:"w_min"`
	WMax     float32 `toml:"w_max"`
}

// Budgets mirrors runtime.StepBudgets in config-file form; 0 is treated as
// "unset" (unbounded) rather than "cap at zero", since toml has no way to
// distinguish an absent field from an explicit zero. A config file alone
// cannot express an actual zero cap; callers who need one must set it with
// runtime.SetBudgets directly after config.Build.
type Budgets struct {
	MaxEdgeVisits      int `toml:"max_edge_visits"`
	MaxSpikesScheduled int `toml:"max_spikes_scheduled"`
}

// Config is the full run configuration, decoded from a toml file and then
// optionally overridden by command-line flags in cmd/snnctl.
type Config struct {
	WheelSize  uint64     `toml:"wheel_size"`
	Ticks      uint64     `toml:"ticks"`
	Network    Network    `toml:"-"`
	NetworkFile string    `toml:"network_file"`
	Plasticity Plasticity `toml:"plasticity"`
	Budgets    Budgets    `toml:"budgets"`
	MetricsAddr string    `toml:"metrics_addr"`
}

// Default returns the zero-value-safe baseline every loaded config starts
// from: a 1024-slot wheel and 100 ticks, with an empty network, plasticity
// disabled, and no budgets. The runtime package itself has no defaults for
// either value.
func Default() Config {
	return Config{
		WheelSize: 1024,
		Ticks:     100,
	}
}

// Load decodes a toml file at path into a Config seeded with Default(), then
// loads its referenced NetworkFile (if set) as a second toml document into
// Config.Network. Returns runtime.ErrInvalidConfiguration wrapped with
// detail on any decode failure.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decoding %s: %v", runtime.ErrInvalidConfiguration, path, err)
	}
	if cfg.NetworkFile != "" {
		if _, err := toml.DecodeFile(cfg.NetworkFile, &cfg.Network); err != nil {
			return Config{}, fmt.Errorf("%w: decoding network file %s: %v", runtime.ErrInvalidConfiguration, cfg.NetworkFile, err)
		}
	}
	return cfg, nil
}

// LoadOptional behaves like Load, but returns Default() unmodified (and no
// error) if path does not exist — run is usable with flags alone.
func LoadOptional(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Build constructs a runtime.Runtime from the loaded network and budgets,
// installing plasticity if enabled. Returned error is whatever runtime.New
// or runtime.AddEdge returned (ErrInvalidInput), or
// runtime.ErrInvalidConfiguration if enabled plasticity ends up with
// w_min greater than w_max.
func Build(cfg Config) (*runtime.Runtime, error) {
	rt, err := runtime.New(cfg.WheelSize)
	if err != nil {
		return nil, err
	}

	for _, n := range cfg.Network.Neurons {
		rt.AddNeuron(n.Threshold)
	}
	for _, e := range cfg.Network.Edges {
		if _, err := rt.AddEdge(e.Sources, e.Targets, e.Weight, e.Delay); err != nil {
			return nil, err
		}
	}

	budgets := runtimeBudgets(cfg.Budgets)
	rt.SetBudgets(budgets)

	if cfg.Plasticity.Enabled {
		p := cfg.Plasticity
		rule := newSTDP(p)
		if rule.WMin > rule.WMax {
			return nil, fmt.Errorf("%w: plasticity w_min exceeds w_max", runtime.ErrInvalidConfiguration)
		}
		rt.SetPlasticity(rule)
	}

	return rt, nil
}

// runtimeBudgets converts the toml Budgets block into runtime.StepBudgets,
// treating 0 as "unset" per Budgets' own doc comment.
func runtimeBudgets(b Budgets) runtime.StepBudgets {
	var out runtime.StepBudgets
	if b.MaxEdgeVisits != 0 {
		v := b.MaxEdgeVisits
		out.MaxEdgeVisits = &v
	}
	if b.MaxSpikesScheduled != 0 {
		v := b.MaxSpikesScheduled
		out.MaxSpikesScheduled = &v
	}
	return out
}

// defaultSTDPParams mirrors plasticity.DefaultQuantizedSTDP's float inputs,
// used below to fill in any field a config file's [plasticity] block leaves
// at its toml zero value.
var defaultSTDPParams = struct {
	APlus, AMinus, AlphaPre, AlphaPost, WMin, WMax float32
}{0.01, 0.012, 0.96, 0.96, 0.0, 1.0}

// newSTDP builds a plasticity.QuantizedSTDP from a config Plasticity block,
// falling back to the default parameters for any field left at its
// toml zero value, so that [plasticity]\nenabled = true alone produces the
// default rule rather than an all-zero one. WMin is the one field whose
// genuine zero value (0.0) coincides with the default, so it always passes
// through as given.
func newSTDP(p Plasticity) *plasticity.QuantizedSTDP {
	aPlus, aMinus := p.APlus, p.AMinus
	alphaPre, alphaPost := p.AlphaPre, p.AlphaPost
	wMax := p.WMax

	if aPlus == 0 {
		aPlus = defaultSTDPParams.APlus
	}
	if aMinus == 0 {
		aMinus = defaultSTDPParams.AMinus
	}
	if alphaPre == 0 {
		alphaPre = defaultSTDPParams.AlphaPre
	}
	if alphaPost == 0 {
		alphaPost = defaultSTDPParams.AlphaPost
	}
	if wMax == 0 {
		wMax = defaultSTDPParams.WMax
	}

	return plasticity.NewQuantizedSTDP(aPlus, aMinus, alphaPre, alphaPost, p.WMin, wMax)
}
