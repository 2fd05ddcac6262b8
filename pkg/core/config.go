package core

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the reference values: 20 samples, 10 bounces
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 20,
		MaxDepth:        10,
	}
}

// Merge returns c with every positive field of overrides applied
func (c SamplingConfig) Merge(overrides SamplingConfig) SamplingConfig {
	if overrides.SamplesPerPixel > 0 {
		c.SamplesPerPixel = overrides.SamplesPerPixel
	}
	if overrides.MaxDepth > 0 {
		c.MaxDepth = overrides.MaxDepth
	}
	return c
}
