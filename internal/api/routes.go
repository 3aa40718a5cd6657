package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
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
		Route(ws.POST("/overlaps").
			To(handler.CountOverlaps).
			Doc("Count points covered by overlapping vent lines").
			Metadata(restfulspec.KeyOpenAPITags, []string{"overlaps"}).
			Reads(models.CountRequest{}).
			Writes(models.CountResult{}).
			Returns(200, "OK", models.CountResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Unsupported Slope", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/overlaps/text").
			To(handler.CountOverlapsText).
			Doc("Count overlaps from raw 'x1,y1 -> x2,y2' lines").
			Metadata(restfulspec.KeyOpenAPITags, []string{"overlaps"}).
			Consumes("text/plain").
			Param(ws.QueryParameter("threshold", "Minimum number of covering lines (default: 2)").DataType("integer").Required(false)).
			Param(ws.QueryParameter("id", "Request identifier").DataType("string").Required(false)).
			Writes(models.CountResult{}).
			Returns(200, "OK", models.CountResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(422, "Unsupported Slope", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/reports/{report_id}").
			To(handler.GetReport).
			Doc("Fetch a stored count result").
			Metadata(restfulspec.KeyOpenAPITags, []string{"reports"}).
			Param(ws.PathParameter("report_id", "Request identifier of the stored result").DataType("string")).
			Writes(models.CountResult{}).
			Returns(200, "OK", models.CountResult{}).
			Returns(404, "Report Not Found", middleware.ErrorResponse{}).
			Returns(503, "Report Store Not Configured", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/reports").
			To(handler.ListReports).
			Doc("List the most recent stored count results").
			Metadata(restfulspec.KeyOpenAPITags, []string{"reports"}).
			Param(ws.QueryParameter("limit", "Maximum number of reports (default: 20)").DataType("integer").Required(false)).
			Writes([]models.CountResult{}).
			Returns(200, "OK", []models.CountResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(503, "Report Store Not Configured", middleware.ErrorResponse{}))

	container.Add(ws)
}
