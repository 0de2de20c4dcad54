// Package simplex generates deterministic simplex gradient noise over 2D,
// 3D and 4D coordinate spaces: smooth, band-limited scalar fields for
// procedural texture, terrain and animation work.
//
// A generator owns one shuffled permutation table built at construction
// time and is immutable afterwards, so any number of goroutines may
// evaluate noise on the same generator concurrently. Raw methods return
// single-kernel values nominally in [-1, 1]; Scaled methods sum octaves of
// fractal detail and map the result into the configured output range.
//
// Basic usage:
//
//	gen, err := simplex.New(simplex.DefaultConfig())
//	if err != nil {
//		...
//	}
//	v := gen.Raw2D(x, y)
package simplex

import (
	"fmt"
	"math"
	mathrand "math/rand"

	"github.com/nozzle/simplex/internal/rand"
	"github.com/nozzle/simplex/kernel"
	"github.com/nozzle/simplex/perm"
)

// Config configures a noise generator.
type Config struct {
	// Amplitude is the base octave's amplitude.
	// Default: 1.0
	Amplitude float64

	// Frequency is the base octave's frequency; each further octave
	// doubles it.
	// Default: 1.0
	Frequency float64

	// Octaves is the number of noise layers summed by the Scaled methods.
	// Must be at least 1.
	// Default: 1
	Octaves int

	// Persistence is the per-octave amplitude decay factor.
	// Default: 0.5
	Persistence float64

	// Min and Max bound the output of the Scaled methods. Min must be
	// strictly less than Max. The default [-1, 1] range leaves the
	// normalized octave sum untouched.
	// Default: -1 and 1
	Min float64
	Max float64

	// Seed drives a deterministic MT19937 source for the permutation
	// shuffle when Random is nil. Use a fixed nonzero seed for
	// reproducible fields; 0 falls back to the platform PRNG.
	// Default: 0
	Seed int64

	// Random is the shuffle source for the permutation table. It must
	// return values in [0, 1); out-of-range values are undefined behavior.
	// When set it takes precedence over Seed.
	// Default: nil
	Random func() float64
}

// DefaultConfig returns the default noise configuration.
func DefaultConfig() Config {
	return Config{
		Amplitude:   1.0,
		Frequency:   1.0,
		Octaves:     1,
		Persistence: 0.5,
		Min:         -1.0,
		Max:         1.0,
		Seed:        0,
		Random:      nil,
	}
}

// Noise is a simplex noise generator. It is immutable after New returns and
// safe for concurrent use.
type Noise struct {
	config Config
	table  *perm.Table
}

// New builds a generator from config. Validation happens here and only
// here: a successfully constructed generator's evaluation methods never
// fail for finite inputs.
func New(config Config) (*Noise, error) {
	if config.Octaves < 1 {
		return nil, fmt.Errorf("simplex: octaves must be at least 1, got %d", config.Octaves)
	}
	if !(config.Min < config.Max) {
		return nil, fmt.Errorf("simplex: min (%v) must be less than max (%v)", config.Min, config.Max)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"amplitude", config.Amplitude},
		{"frequency", config.Frequency},
		{"persistence", config.Persistence},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return nil, fmt.Errorf("simplex: %s must be finite, got %v", f.name, f.value)
		}
	}

	random := config.Random
	if random == nil {
		if config.Seed != 0 {
			random = rand.NewMT19937(uint32(config.Seed)).Float64
		} else {
			random = mathrand.Float64
		}
	}

	return &Noise{
		config: config,
		table:  perm.Build(random),
	}, nil
}

// Raw2D returns unscaled 2D noise at (x, y), in [-1, 1].
func (n *Noise) Raw2D(x, y float64) float64 {
	return kernel.Noise2D(n.table, x, y)
}

// Raw3D returns unscaled 3D noise at (x, y, z), nominally in [-1, 1].
func (n *Noise) Raw3D(x, y, z float64) float64 {
	return kernel.Noise3D(n.table, x, y, z)
}

// Raw4D returns unscaled 4D noise at (x, y, z, w), nominally in [-1, 1].
func (n *Noise) Raw4D(x, y, z, w float64) float64 {
	return kernel.Noise4D(n.table, x, y, z, w)
}

// Scaled2D returns fractal 2D noise at (x, y) in the configured [Min, Max]
// range.
func (n *Noise) Scaled2D(x, y float64) float64 {
	total := 0.0
	maxAmplitude := 0.0
	amplitude := n.config.Amplitude
	frequency := n.config.Frequency
	for o := 0; o < n.config.Octaves; o++ {
		total += kernel.Noise2D(n.table, x*frequency, y*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= n.config.Persistence
		frequency *= 2.0
	}
	return n.rescale(total / maxAmplitude)
}

// Scaled3D returns fractal 3D noise at (x, y, z) in the configured
// [Min, Max] range.
func (n *Noise) Scaled3D(x, y, z float64) float64 {
	total := 0.0
	maxAmplitude := 0.0
	amplitude := n.config.Amplitude
	frequency := n.config.Frequency
	for o := 0; o < n.config.Octaves; o++ {
		total += kernel.Noise3D(n.table, x*frequency, y*frequency, z*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= n.config.Persistence
		frequency *= 2.0
	}
	return n.rescale(total / maxAmplitude)
}

// Scaled4D returns fractal 4D noise at (x, y, z, w) in the configured
// [Min, Max] range.
func (n *Noise) Scaled4D(x, y, z, w float64) float64 {
	total := 0.0
	maxAmplitude := 0.0
	amplitude := n.config.Amplitude
	frequency := n.config.Frequency
	for o := 0; o < n.config.Octaves; o++ {
		total += kernel.Noise4D(n.table, x*frequency, y*frequency, z*frequency, w*frequency) * amplitude
		maxAmplitude += amplitude
		amplitude *= n.config.Persistence
		frequency *= 2.0
	}
	return n.rescale(total / maxAmplitude)
}

// rescale maps a normalized octave sum from [-1, 1] into [Min, Max]. The
// default range is passed through untouched so single-octave Scaled calls
// reduce exactly to the raw kernel.
func (n *Noise) rescale(v float64) float64 {
	if n.config.Min == -1.0 && n.config.Max == 1.0 {
		return v
	}
	return n.config.Min + ((v+1.0)/2.0)*(n.config.Max-n.config.Min)
}
