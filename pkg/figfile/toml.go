// SPDX-License-Identifier: MPL-2.0

package figfile

import (
	"errors"
	"fmt"

	"github.com/figtools/figgo/pkg/fig"

	"github.com/pelletier/go-toml/v2"
)

// ParseTOMLBytes parses TOML figfile content from bytes. TOML manifests
// carry the same fields as the CUE form; structural grammar checks the
// CUE schema would perform (name pattern, non-empty values list) are
// applied here after decoding.
func ParseTOMLBytes(data []byte, path string) (*Figfile, error) {
	var f Figfile
	if err := toml.Unmarshal(data, &f); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s", path, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.FilePath = path

	for i, p := range f.Predicates {
		if _, err := fig.ParseName(p.Name); err != nil {
			return nil, fmt.Errorf("%s: predicates[%d]: %w", path, i, err)
		}
		if p.Values != nil && len(p.Values) == 0 {
			return nil, fmt.Errorf("%s: predicates[%d]: values must be non-empty when present", path, i)
		}
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}
