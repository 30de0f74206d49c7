package content

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/educreate/gamecore/internal/fileformat"
)

// Decode reads a content set encoded as f from r. The document is checked
// against Schema first, so type mismatches are reported with their JSON
// pointer instead of a bare unmarshal error.
func Decode(r io.Reader, f fileformat.Format) (*Content, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	raw, err := fileformat.ToJSON(data, f)
	if err != nil {
		return nil, err
	}
	if err := checkSchema(raw); err != nil {
		return nil, err
	}

	var c Content
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return &c, nil
}

// Load decodes the content file at path, choosing the format from its extension.
func Load(path string) (*Content, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, fileformat.FromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
