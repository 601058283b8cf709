// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes flexschema parsing and generation as tools over stdio.
//
// Two tools are registered:
//
//   - parse: summarizes the schemas in a document (keys, kinds, properties,
//     enums and references) and reports parser warnings.
//   - generate: runs the selected backends and returns the generated files
//     inline, or writes them to output_dir.
//
// Documents are passed either as a file path or as inline content. Parse
// results are cached per server by content hash (or path and mtime for
// files) in a bounded LRU with a TTL.
//
// The server logs with log/slog to stderr since stdout carries the protocol.
package mcpserver
