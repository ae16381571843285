package api

import (
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
)

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

// ValidateRequest selects the constraint set by catalog category, inline, or
// both. Inline limits override the matching catalog limits.
type ValidateRequest struct {
	Category    string                    `json:"category,omitempty" description:"Catalog category (ring, necklace, bracelet, earrings)"`
	Constraints *models.DesignConstraints `json:"constraints,omitempty" description:"Explicit limits, laid over the category entry"`
	Attributes  models.DesignAttributes   `json:"attributes" description:"Design attributes to validate"`
}

func (r *ValidateRequest) Validate() error {
	if r.Constraints == nil && r.Category == "" {
		return middleware.ErrMissingCategory
	}
	return nil
}

type ConstraintsResponse struct {
	Categories map[string]models.DesignConstraints `json:"categories" description:"Constraint set per category"`
}

type CategoryConstraintsResponse struct {
	Category    string                   `json:"category"`
	Constraints models.DesignConstraints `json:"constraints"`
}
