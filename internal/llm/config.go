// Package llm provides the client that sends assembled prompts to the generative text
// endpoint, the model tier configuration and the error taxonomy for failed calls.
package llm

// ModelTier names a model slot in Config
type ModelTier string

// TierStandard is used for prompt enhancement and task suggestion
const TierStandard ModelTier = "standard"

// Config holds the model configuration for the application
type Config struct {
	Models map[ModelTier]string
}

// GenerationParams are the sampling overrides sent with a request.
type GenerationParams struct {
	Temperature float32
	TopK        int32
	TopP        float32
}

// Sampling parameters are fixed per operation and not user-configurable.
var (
	// EnhanceParams leave room for nuance in the generated prompt.
	EnhanceParams = GenerationParams{Temperature: 0.65, TopK: 40, TopP: 0.9}
	// SuggestParams bias toward a short, deterministic answer.
	SuggestParams = GenerationParams{Temperature: 0.2, TopK: 5, TopP: 0.8}
)

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier, falling back to the standard tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}

// WithModel returns a new Config with a specific model for a tier.
// An empty model leaves the tier unchanged.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Models: make(map[ModelTier]string, len(c.Models)+1),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	if model != "" {
		newConfig.Models[tier] = model
	}
	return newConfig
}
