package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
)

// RegisterDocs serves the OpenAPI description of every registered web service at /apidocs.json.
// Call it after RegisterRoutes.
func RegisterDocs(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/apidocs.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Vent Agent API",
			Description: "Counts lattice points covered by overlapping horizontal, vertical and 45° vent lines",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "overlaps", Description: "Overlap counting"}},
		{TagProps: spec.TagProps{Name: "reports", Description: "Stored results"}},
		{TagProps: spec.TagProps{Name: "health", Description: "Service health"}},
	}
}
