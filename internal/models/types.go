package models

type Category string

const (
	CategoryRing     Category = "ring"
	CategoryNecklace Category = "necklace"
	CategoryBracelet Category = "bracelet"
	CategoryEarrings Category = "earrings"
)

// DesignConstraints holds the manufacturing limits for one jewelry category.
// Units: density g/cm³, lengths mm, weight g. A nil field means no limit.
type DesignConstraints struct {
	Density      *float64 `json:"density,omitempty" yaml:"density,omitempty" description:"Metal density in g/cm3"`
	MinThickness *float64 `json:"min_thickness,omitempty" yaml:"min_thickness,omitempty" description:"Minimum thickness in mm"`
	MaxWeight    *float64 `json:"max_weight,omitempty" yaml:"max_weight,omitempty" description:"Maximum weight in g"`
	MinChainSize *float64 `json:"min_chain_size,omitempty" yaml:"min_chain_size,omitempty" description:"Minimum chain link size in mm"`
	MinWidth     *float64 `json:"min_width,omitempty" yaml:"min_width,omitempty" description:"Minimum band width in mm"`
	MinPostSize  *float64 `json:"min_post_size,omitempty" yaml:"min_post_size,omitempty" description:"Minimum earring post size in mm"`
}

// DesignAttributes describes one generated design. Prompt is required but may
// be empty; nil means the field was not supplied.
type DesignAttributes struct {
	Prompt    *string  `json:"prompt" jsonschema:"prompt the design was generated from" description:"Prompt the design was generated from"`
	Thickness *float64 `json:"thickness,omitempty" jsonschema:"measured thickness in mm" description:"Measured thickness in mm"`
	Weight    *float64 `json:"weight,omitempty" jsonschema:"estimated weight in g" description:"Estimated weight in g"`
}

type ValidationResult struct {
	Valid    bool     `json:"valid" description:"True when errors is empty"`
	Errors   []string `json:"errors" description:"Constraint violations"`
	Warnings []string `json:"warnings" description:"Non-blocking advisories"`
}

// Gateway payloads

type GenerationRequest struct {
	Prompt string `json:"prompt" description:"Design prompt"`
	Type   string `json:"type,omitempty" description:"Jewelry type selected by the client"`
}

type Image2DResponse struct {
	Image  string `json:"image" description:"Base64 encoded image"`
	Format string `json:"format" description:"Image format"`
}

type Model3DResponse struct {
	ModelURL  *string `json:"model_url" description:"URL of the generated model"`
	Thumbnail *string `json:"thumbnail" description:"URL of the model thumbnail"`
}

type KeyStatus struct {
	StabilityKeyExists bool `json:"stability_key_exists"`
	MeshyKeyExists     bool `json:"meshy_key_exists"`
	StabilityKeyPrefix bool `json:"stability_key_prefix"`
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
