package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/validator"
)

const ServerName = "jewelry-agent"

func NewServer(v *validator.DesignValidator, svc *generation.Service, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: version,
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_design",
		Description: "Check a jewelry design's thickness and weight against manufacturing constraints, by catalog category or explicit limits",
	}, NewValidateDesignHandler(v))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_constraints",
		Description: "List manufacturing constraints per jewelry category (ring, necklace, bracelet, earrings)",
	}, NewListConstraintsHandler(v))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_2d",
		Description: "Generate a 2D jewelry design image (base64 webp) with Stability AI",
	}, NewGenerate2DHandler(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_3d",
		Description: "Start a 3D jewelry model generation with Meshy and return the model and thumbnail URLs",
	}, NewGenerate3DHandler(svc))

	return server
}
