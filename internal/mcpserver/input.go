package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/erraggy/flexschema/parser"
)

// source is a schema document as passed to a tool.
// Exactly one of File or Content must be set.
type source struct {
	File        string
	Content     string
	LinkSchemas bool
}

// cacheKey identifies a source. Files are keyed by absolute path and mtime
// so edits invalidate the entry; content is keyed by its SHA-256 hash.
// An empty key means the source is not cacheable.
func (s source) cacheKey() string {
	link := strconv.FormatBool(s.LinkSchemas)
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(abs)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d:%s", abs, info.ModTime().UnixNano(), link)
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:]) + ":" + link
	}
	return ""
}

// resolve parses the source, going through the cache when it is enabled.
func (srv *Server) resolve(s source) (*parser.ParseResult, error) {
	switch {
	case s.File == "" && s.Content == "":
		return nil, fmt.Errorf("one of file or content must be provided")
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("only one of file or content may be provided")
	}
	if int64(len(s.Content)) > srv.cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead",
			len(s.Content), srv.cfg.MaxInlineSize)
	}

	var key string
	if srv.cache != nil {
		key = s.cacheKey()
		if key != "" {
			if cached := srv.cache.get(key); cached != nil {
				srv.logger.Debug("parse cache hit", "key", key)
				return cached, nil
			}
		}
	}

	opts := []parser.Option{
		parser.WithLinkSchemas(s.LinkSchemas),
		parser.WithLogger(parser.NewSlogAdapter(srv.logger)),
	}
	if s.File != "" {
		opts = append(opts, parser.WithFilePath(s.File))
	} else {
		opts = append(opts, parser.WithBytes([]byte(s.Content)), parser.WithSourceName("content"))
	}

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		srv.cache.put(key, result)
	}
	return result, nil
}
