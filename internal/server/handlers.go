package server

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tripplexbns-code/ainiform-sub000/internal/annotation"
	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "uniform_annotate", "design_save").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Runs the annotation pipeline or store operation
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Uniform Analysis
	case "uniform_annotate":
		return s.handleUniformAnnotate(args)
	case "uniform_annotate_batch":
		return s.handleUniformAnnotateBatch(args)
	case "uniform_compare":
		return s.handleUniformCompare(args)
	case "uniform_render":
		return s.handleUniformRender(args)
	case "uniform_find_similar":
		return s.handleUniformFindSimilar(args)

	// Design Store
	case "design_save":
		return s.handleDesignSave(args)
	case "design_list":
		return s.handleDesignList(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.GetDimensions(img), nil
}

// === Uniform Analysis Handlers ===

type uniformAnnotateArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleUniformAnnotate(args json.RawMessage) (interface{}, error) {
	var a uniformAnnotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.annotator.Annotate(context.Background(), a.Path), nil
}

type uniformAnnotateBatchArgs struct {
	Paths     []string `json:"paths"`
	RenderDir string   `json:"render_dir"`
}

func (s *Server) handleUniformAnnotateBatch(args json.RawMessage) (interface{}, error) {
	var a uniformAnnotateBatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, fmt.Errorf("paths must not be empty")
	}

	docs := s.annotator.AnnotateBatch(context.Background(), a.Paths)

	annotated := 0
	renderedPaths := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.Ok() {
			annotated++
		}
		if a.RenderDir != "" && doc.Ok() {
			base := filepath.Base(doc.ImagePath)
			out := filepath.Join(a.RenderDir,
				strings.TrimSuffix(base, filepath.Ext(base))+"_annotated.jpg")
			renderedPaths = append(renderedPaths, annotation.Render(s.cache, doc, out))
		}
	}

	result := map[string]interface{}{
		"total_images":    len(docs),
		"total_annotated": annotated,
		"annotations":     docs,
	}
	if a.RenderDir != "" {
		result["rendered_paths"] = renderedPaths
	}
	return result, nil
}

type uniformCompareArgs struct {
	Path1 string `json:"path1"`
	Path2 string `json:"path2"`
}

func (s *Server) handleUniformCompare(args json.RawMessage) (interface{}, error) {
	var a uniformCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	ctx := context.Background()
	doc1 := s.annotator.Annotate(ctx, a.Path1)
	doc2 := s.annotator.Annotate(ctx, a.Path2)
	return annotation.Compare(doc1, doc2)
}

type uniformRenderArgs struct {
	Path       string `json:"path"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleUniformRender(args json.RawMessage) (interface{}, error) {
	var a uniformRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	doc := s.annotator.Annotate(context.Background(), a.Path)
	if !doc.Ok() {
		return nil, fmt.Errorf("annotation failed: %s", doc.Error)
	}

	rendered := annotation.Render(s.cache, doc, a.OutputPath)
	return map[string]interface{}{
		"annotated_image_path": rendered,
		"uniqueness_signature": doc.UniquenessSignature,
	}, nil
}

type uniformFindSimilarArgs struct {
	Path       string   `json:"path"`
	Candidates []string `json:"candidates"`
	Threshold  float64  `json:"threshold"`
}

func (s *Server) handleUniformFindSimilar(args json.RawMessage) (interface{}, error) {
	var a uniformFindSimilarArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold == 0 {
		a.Threshold = annotation.SimilarityThreshold
	}

	ctx := context.Background()
	target := s.annotator.Annotate(ctx, a.Path)
	if !target.Ok() {
		return nil, fmt.Errorf("annotation failed: %s", target.Error)
	}

	corpus := s.annotator.AnnotateBatch(ctx, a.Candidates)
	matches := annotation.FindSimilar(target, corpus, a.Threshold)
	return map[string]interface{}{
		"target":        a.Path,
		"threshold":     a.Threshold,
		"total_matches": len(matches),
		"matches":       matches,
	}, nil
}

// === Design Store Handlers ===

type designSaveArgs struct {
	Collection string         `json:"collection"`
	Record     map[string]any `json:"record"`
}

func (s *Server) handleDesignSave(args json.RawMessage) (interface{}, error) {
	if s.store == nil {
		return nil, fmt.Errorf("design store not configured")
	}

	var a designSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	id, err := s.store.Add(context.Background(), a.Collection, a.Record)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":         id,
		"collection": a.Collection,
	}, nil
}

type designListArgs struct {
	Collection string `json:"collection"`
	Limit      int    `json:"limit"`
}

func (s *Server) handleDesignList(args json.RawMessage) (interface{}, error) {
	if s.store == nil {
		return nil, fmt.Errorf("design store not configured")
	}

	var a designListArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	records, err := s.store.Get(context.Background(), a.Collection, a.Limit)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"collection":    a.Collection,
		"total_records": len(records),
		"records":       records,
	}, nil
}
