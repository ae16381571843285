package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
	"github.com/povarna/generative-ai-agents/jewelry-agent/web"
)

const OpenAPIPath = "/api/v1/openapi.json"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	container.ServiceErrorHandler(handler.ServiceError)
	container.Add(gatewayService(handler))
	container.Add(apiService(handler))
	container.Handle("/static/", web.StaticHandler())
}

// gatewayService keeps the root level routes used by the web client.
func gatewayService(handler *Handler) *restful.WebService {
	ws := new(restful.WebService)

	ws.
		Path("/").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.GET("/").
			To(handler.Home).
			Produces("text/html").
			Doc("Homepage").
			Metadata(restfulspec.KeyOpenAPITags, []string{"web"}).
			Returns(200, "OK", nil))

	ws.
		Route(ws.POST("/generate-2d").
			To(handler.Generate2D).
			Doc("Generate a 2D jewelry design with Stability AI").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(models.GenerationRequest{}).
			Writes(models.Image2DResponse{}).
			Returns(200, "OK", models.Image2DResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/generate-3d").
			To(handler.Generate3D).
			Doc("Generate a 3D jewelry model with Meshy").
			Metadata(restfulspec.KeyOpenAPITags, []string{"generate"}).
			Reads(models.GenerationRequest{}).
			Writes(models.Model3DResponse{}).
			Returns(200, "OK", models.Model3DResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/verify-keys").
			To(handler.VerifyKeys).
			Doc("Report whether API keys are configured").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(models.KeyStatus{}).
			Returns(200, "OK", models.KeyStatus{}))

	return ws
}

func apiService(handler *Handler) *restful.WebService {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/constraints").
			To(handler.ListConstraints).
			Doc("List manufacturing constraints per jewelry category").
			Metadata(restfulspec.KeyOpenAPITags, []string{"constraints"}).
			Writes(ConstraintsResponse{}).
			Returns(200, "OK", ConstraintsResponse{}))

	ws.
		Route(ws.GET("/constraints/{category}").
			To(handler.GetConstraints).
			Doc("Get manufacturing constraints for one category").
			Metadata(restfulspec.KeyOpenAPITags, []string{"constraints"}).
			Param(ws.PathParameter("category", "Jewelry category (ring, necklace, bracelet, earrings)").DataType("string")).
			Writes(CategoryConstraintsResponse{}).
			Returns(200, "OK", CategoryConstraintsResponse{}).
			Returns(404, "Category Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/validate").
			To(handler.Validate).
			Doc("Validate a design against manufacturing constraints").
			Metadata(restfulspec.KeyOpenAPITags, []string{"validate"}).
			Reads(ValidateRequest{}).
			Writes(models.ValidationResult{}).
			Returns(200, "OK", models.ValidationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Category Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	return ws
}

// RegisterOpenAPI serves the OpenAPI document for every web service already
// added to container.
func RegisterOpenAPI(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       OpenAPIPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}

	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Jewelry Design Gateway",
			Description: "2D/3D jewelry design generation and manufacturability checks",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "generate", Description: "Design generation"}},
		{TagProps: spec.TagProps{Name: "validate", Description: "Manufacturing validation"}},
		{TagProps: spec.TagProps{Name: "constraints", Description: "Constraint catalog"}},
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
	}
}
