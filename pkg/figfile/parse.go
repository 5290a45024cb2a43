// SPDX-License-Identifier: MPL-2.0

package figfile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/figtools/figgo/internal/cueutil"
)

//go:embed figfile_schema.cue
var figfileSchema string

// DefaultFileName is the manifest filename looked up when the caller
// does not name one explicitly.
const DefaultFileName = "figfile.cue"

// Parse reads and parses a figfile from the given path. The format is
// chosen by extension: .cue (default) or .toml.
func Parse(path string) (*Figfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read figfile at %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOMLBytes(data, path)
	}
	return ParseBytes(data, path)
}

// ParseBytes parses CUE figfile content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema → compile user data → validate and decode.
func ParseBytes(data []byte, path string) (*Figfile, error) {
	result, err := cueutil.ParseAndDecodeString[Figfile](
		figfileSchema,
		data,
		"#Figfile",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	f := result.Value
	f.FilePath = path

	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
