package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// splitFrontMatter separates a leading ---, +++ or ;;; delimited metadata
// block from a markdown note. The block is only recognized when its first
// line looks like metadata and it is closed; otherwise body is src and delim
// is nil.
func splitFrontMatter(src []byte) (body, delim, raw []byte) {
	text := bytes.TrimPrefix(src, []byte{0xEF, 0xBB, 0xBF})
	first, next := splitLine(text, 0)
	delim = bytes.TrimSpace(first)
	if !isFrontMatterDelimiter(delim) {
		return src, nil, nil
	}
	second, _ := splitLine(text, next)
	if !looksLikeMetadata(second) {
		return src, nil, nil
	}
	for idx := next; idx < len(text); {
		line, after := splitLine(text, idx)
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return text[after:], delim, text[next:idx]
		}
		idx = after
	}
	return src, nil, nil
}

// decodeFrontMatter decodes raw by delimiter: YAML for ---, TOML for +++ and
// JSON for ;;;.
func decodeFrontMatter(delim, raw []byte) (map[string]any, error) {
	meta := map[string]any{}
	var err error
	switch string(delim) {
	case "---":
		err = yaml.Unmarshal(raw, &meta)
	case "+++":
		err = toml.Unmarshal(raw, &meta)
	case ";;;":
		err = json.Unmarshal(raw, &meta)
	default:
		return nil, fmt.Errorf("unknown front matter delimiter %q", delim)
	}
	if err != nil {
		return nil, fmt.Errorf("decode front matter: %w", err)
	}
	return meta, nil
}

func isFrontMatterDelimiter(line []byte) bool {
	switch string(line) {
	case "---", "+++", ";;;":
		return true
	}
	return false
}

func looksLikeMetadata(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return true
	}
	return bytes.ContainsAny(trimmed, ":=")
}

// splitLine returns the line starting at start without its line ending and
// the offset of the following line.
func splitLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return bytes.TrimSuffix(src[start:], []byte("\r")), len(src)
	}
	return bytes.TrimSuffix(src[start:start+i], []byte("\r")), start + i + 1
}
