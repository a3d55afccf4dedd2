package runtime

import "errors"

// Construction-time error taxonomy. Step-time budget trips are never
// errors — see StepOnce's doc comment.
var (
	// ErrInvalidInput covers malformed construction arguments: a zero
	// wheel size, an edge with empty Sources or Targets, or delay == 0.
	ErrInvalidInput = errors.New("snn-engine: invalid input")

	// ErrInvalidConfiguration covers a semantically inconsistent
	// configuration, such as plasticity parameters with WMin > WMax.
	ErrInvalidConfiguration = errors.New("snn-engine: invalid configuration")

	// ErrNotSupported is returned by feature-gated operations when the
	// feature they depend on is not installed or not applicable — e.g.
	// Runtime.PlasticityParams with no rule installed, or with a rule
	// installed that isn't a *plasticity.QuantizedSTDP.
	ErrNotSupported = errors.New("snn-engine: not supported")
)
