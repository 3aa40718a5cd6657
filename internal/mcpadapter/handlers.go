package mcpadapter

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/geometry"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/parser"
)

type Executor interface {
	Execute(ctx context.Context, req models.CountRequest) (models.CountResult, error)
}

// CountInput is the MCP tool input schema for overlap counting.
type CountInput struct {
	ID        string `json:"id,omitempty" jsonschema:"optional request identifier"`
	Lines     string `json:"lines" jsonschema:"vent lines, one 'x1,y1 -> x2,y2' per line"`
	Threshold int    `json:"threshold,omitempty" jsonschema:"minimum number of covering lines (default: 2)"`
}

// ClassifyInput is the MCP tool input schema for a single vent line.
type ClassifyInput struct {
	Line string `json:"line" jsonschema:"vent line in 'x1,y1 -> x2,y2' form"`
}

// CountOutput mirrors models.CountResult without timing fields.
type CountOutput struct {
	ID          string `json:"id"`
	Threshold   int    `json:"threshold"`
	Lines       int    `json:"lines"`
	AxisAligned int    `json:"axis_aligned" jsonschema:"points covered by two or more horizontal or vertical lines"`
	All         int    `json:"all" jsonschema:"points covered by two or more lines of any supported orientation"`
	Validated   bool   `json:"validated"`
}

type ClassifyOutput struct {
	Segment     string `json:"segment"`
	Orientation string `json:"orientation"`
	Points      int    `json:"points"`
	Supported   bool   `json:"supported"`
}

// NewCountHandler returns a tool handler that uses the given executor.
// Pass the returned function to mcp.AddTool.
func NewCountHandler(exec Executor) func(context.Context, *mcp.CallToolRequest, CountInput) (*mcp.CallToolResult, CountOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CountInput) (*mcp.CallToolResult, CountOutput, error) {
		return CountOverlaps(ctx, exec, req, input)
	}
}

// CountOverlaps parses the lines and runs both counting passes.
func CountOverlaps(
	ctx context.Context,
	exec Executor,
	req *mcp.CallToolRequest,
	input CountInput,
) (*mcp.CallToolResult, CountOutput, error) {
	segments, err := parser.ParseString(input.Lines)
	if err != nil {
		return nil, CountOutput{}, err
	}

	countRequest := models.CountRequest{
		ID:        input.ID,
		Threshold: input.Threshold,
		Lines:     make([]models.VentLine, 0, len(segments)),
	}
	for _, s := range segments {
		countRequest.Lines = append(countRequest.Lines, models.FromSegment(s))
	}

	result, err := exec.Execute(ctx, countRequest)
	if err != nil {
		return nil, CountOutput{}, err
	}

	return nil, CountOutput{
		ID:          result.ID,
		Threshold:   result.Threshold,
		Lines:       result.Lines,
		AxisAligned: result.AxisAligned,
		All:         result.All,
		Validated:   result.Validated,
	}, nil
}

// ClassifySegment reports the orientation of one vent line and how many lattice points it covers.
func ClassifySegment(
	ctx context.Context,
	req *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, ClassifyOutput, error) {
	segment, err := parser.ParseLine(input.Line)
	if err != nil {
		return nil, ClassifyOutput{}, err
	}

	output := ClassifyOutput{
		Segment:     segment.String(),
		Orientation: segment.Orientation().String(),
		Supported:   segment.Check() == nil,
	}
	if output.Supported {
		output.Points = segment.Len()
	}
	return nil, output, nil
}

// NewServer registers the vent tools on a fresh MCP server.
func NewServer(exec Executor, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vent-agent",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "count_overlaps",
		Description: "Count lattice points covered by two or more vent lines, for straight lines only and for all lines",
	}, NewCountHandler(exec))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify_segment",
		Description: fmt.Sprintf("Classify a vent line as %s, %s, %s or %s", geometry.Horizontal, geometry.Vertical, geometry.Diagonal45, geometry.Invalid),
	}, ClassifySegment)

	return server
}
