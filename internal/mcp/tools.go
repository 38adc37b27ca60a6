package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hollyoak/canopy/internal/export"
	"github.com/hollyoak/canopy/internal/mindmap"
	"github.com/hollyoak/canopy/internal/store"
)

// --- Export tool ---

// ExportInput is the input for the export tool.
type ExportInput struct {
	Format string `json:"format"          jsonschema:"export format: json, markdown, or plan-feature"`
	Scope  string `json:"scope,omitempty" jsonschema:"node id to scope a plan-feature export to"`
}

// ExportOutput is the output for the export tool.
type ExportOutput struct {
	FileName  string `json:"file_name"  jsonschema:"derived artifact file name"`
	MediaType string `json:"media_type" jsonschema:"artifact media type"`
	Text      string `json:"text"       jsonschema:"artifact text"`
}

func handleExport(mapPath string) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		format, ok := export.ParseFormat(input.Format)
		if !ok {
			return nil, ExportOutput{}, fmt.Errorf("format must be json, markdown, or plan-feature, got %q", input.Format)
		}

		snap, err := store.Load(mapPath)
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("loading map: %w", err)
		}

		artifact, err := export.Build(snap, format, input.Scope, time.Now().UTC())
		if err != nil {
			return nil, ExportOutput{}, fmt.Errorf("building artifact: %w", err)
		}

		return nil, ExportOutput{
			FileName:  artifact.FileName,
			MediaType: artifact.MediaType,
			Text:      artifact.Text,
		}, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show tool.
type ShowInput struct {
	NodeID string `json:"node_id,omitempty" jsonschema:"node id to scope the outline to"`
}

// ShowOutput is the output for the show tool.
type ShowOutput struct {
	Outline string `json:"outline" jsonschema:"markdown outline of the map or subtree"`
}

func handleShow(mapPath string) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		snap, err := store.Load(mapPath)
		if err != nil {
			return nil, ShowOutput{}, fmt.Errorf("loading map: %w", err)
		}
		scoped := mindmap.Scoped(snap, input.NodeID)
		return nil, ShowOutput{Outline: export.EncodeMarkdown(scoped)}, nil
	}
}

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Project  string `json:"project"   jsonschema:"project name"`
	Nodes    int    `json:"nodes"     jsonschema:"number of nodes in the map"`
	MaxDepth int    `json:"max_depth" jsonschema:"depth of the deepest node"`
	MapPath  string `json:"map_path"  jsonschema:"path of the map document"`
}

func handleStatus(mapPath string) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		snap, err := store.Load(mapPath)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("loading map: %w", err)
		}
		return nil, StatusOutput{
			Project:  snap.Project.Name,
			Nodes:    mindmap.Count(snap.Roots),
			MaxDepth: mindmap.MaxDepth(snap.Roots),
			MapPath:  mapPath,
		}, nil
	}
}

// --- Add node tool ---

// AddNodeInput is the input for the add_node tool.
type AddNodeInput struct {
	ParentID    string `json:"parent_id,omitempty"   jsonschema:"parent node id; empty adds a new root"`
	Title       string `json:"title"                 jsonschema:"node title"`
	Description string `json:"description,omitempty" jsonschema:"optional longer description"`
}

// AddNodeOutput is the output for the add_node tool.
type AddNodeOutput struct {
	ID    string `json:"id"    jsonschema:"id of the created node"`
	Nodes int    `json:"nodes" jsonschema:"node count after the addition"`
}

func handleAddNode(mapPath string) mcp.ToolHandlerFor[AddNodeInput, AddNodeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input AddNodeInput) (*mcp.CallToolResult, AddNodeOutput, error) {
		snap, err := store.Load(mapPath)
		if err != nil {
			return nil, AddNodeOutput{}, fmt.Errorf("loading map: %w", err)
		}

		node, err := store.AddNode(snap, input.ParentID, input.Title, input.Description)
		if err != nil {
			return nil, AddNodeOutput{}, err
		}

		if err := store.Save(mapPath, snap); err != nil {
			return nil, AddNodeOutput{}, fmt.Errorf("saving map: %w", err)
		}

		return nil, AddNodeOutput{
			ID:    node.ID,
			Nodes: mindmap.Count(snap.Roots),
		}, nil
	}
}
