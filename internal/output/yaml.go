package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/inodb/fmtexample/internal/variants"
)

// WriteVariantResult writes r as a YAML document.
func WriteVariantResult(w io.Writer, r *variants.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode variant result: %w", err)
	}
	return enc.Close()
}
