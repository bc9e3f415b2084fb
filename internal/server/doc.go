// Package server implements the MCP (Model Context Protocol) server for uniform analysis tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the uniform
// annotation pipeline through the MCP protocol, enabling AI systems and other
// MCP-compatible clients to analyze school uniform designs.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width, height and channel count
//
// Uniform Analysis:
//   - uniform_annotate: Full annotation pipeline for one image
//   - uniform_compare: Similarity score between two uniforms
//   - uniform_render: Draw the annotation findings onto the image
//   - uniform_find_similar: Rank candidate uniforms against a target
//
// Design Store:
//   - design_save: Persist a design record into a collection
//   - design_list: List records from a collection
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(cache, annotator, designs)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
