package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file metadata.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width, height and channel count of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Uniform Analysis
		{
			Name:        "uniform_annotate",
			Description: "Run the full uniform analysis pipeline on an image: component detection, fabric texture, logo and text candidates, color analysis, and a uniqueness signature. Returns the annotation document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the uniform image",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "uniform_annotate_batch",
			Description: "Annotate a list of uniform images in one call, optionally rendering each annotated image into a directory. Per-image failures produce error documents and never abort the batch.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths of the uniform images",
					},
					"render_dir": map[string]interface{}{
						"type":        "string",
						"description": "Directory to write annotated JPEGs into. Omit to skip rendering.",
					},
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "uniform_compare",
			Description: "Annotate two uniform images and score their visual similarity (weighted color, texture and edge sub-scores).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path1": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the first uniform image",
					},
					"path2": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the second uniform image",
					},
				},
				"required": []string{"path1", "path2"},
			},
		},
		{
			Name:        "uniform_render",
			Description: "Annotate a uniform image and draw the findings onto a copy: component, logo and text boxes plus a summary panel. Returns the path of the rendered JPEG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the uniform image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the annotated image. Defaults to <name>_annotated.jpg next to the source.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "uniform_find_similar",
			Description: "Annotate a target uniform image and a set of candidates, and return the candidates ranked by similarity to the target.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the target uniform image",
					},
					"candidates": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths of candidate uniform images",
					},
					"threshold": map[string]interface{}{
						"type":        "number",
						"description": "Minimum overall similarity to report (default 0.7)",
						"default":     0.7,
					},
				},
				"required": []string{"path", "candidates"},
			},
		},

		// Design Store
		{
			Name:        "design_save",
			Description: "Save a design record (e.g. an annotation document) into a named collection of the design database. Returns the record id.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"collection": map[string]interface{}{
						"type":        "string",
						"description": "Collection name, typically one per school",
					},
					"record": map[string]interface{}{
						"type":        "object",
						"description": "The record to store",
					},
				},
				"required": []string{"collection", "record"},
			},
		},
		{
			Name:        "design_list",
			Description: "List records from a collection of the design database, newest first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"collection": map[string]interface{}{
						"type":        "string",
						"description": "Collection name",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of records to return (default: all)",
					},
				},
				"required": []string{"collection"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
