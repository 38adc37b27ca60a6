// Package mcp provides a Model Context Protocol server for canopy.
// It exposes mind-map operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all canopy tools registered.
// The map path is resolved once; every tool call loads a fresh snapshot
// from it, so concurrent edits are never observed mid-encode.
func NewServer(version string, mapPath string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "canopy",
		Version: version,
	}, nil)
	registerTools(server, mapPath)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all canopy tools to the server.
func registerTools(server *mcp.Server, mapPath string) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "export",
		Description: "Export the mind map as an artifact. Formats: json (lossless snapshot), " +
			"markdown (outline document), plan-feature (planning document, optionally scoped to a node). " +
			"Returns the artifact text with its derived file name and media type.",
		Annotations: readOnlyAnnotations(),
	}, handleExport(mapPath))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show",
		Description: "Show the mind map as a markdown outline, optionally scoped to one node's subtree.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(mapPath))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show mind-map state: project name, node count, maximum depth, and map document path.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(mapPath))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_node",
		Description: "Add a node to the mind map under the given parent (or as a new root) and save the document.",
		Annotations: writeAnnotations(),
	}, handleAddNode(mapPath))
}
