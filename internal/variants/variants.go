// Package variants provides the variant processing entry point.
//
// Filtering is not implemented: Process validates its input path and reports
// the requested threshold, but the variant list is always empty.
package variants

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultMinQuality is the quality threshold used when none is given.
const DefaultMinQuality = 20

// Variant is a single record that passed the quality filter.
type Variant struct {
	Chrom string  `yaml:"chrom"`
	Pos   int64   `yaml:"pos"`
	Ref   string  `yaml:"ref"`
	Alt   string  `yaml:"alt"`
	Qual  float64 `yaml:"qual"`
}

// Result bundles the processed input with its filtered variants.
type Result struct {
	File             string     `yaml:"file"`
	QualityThreshold int        `yaml:"quality_threshold"`
	Variants         []*Variant `yaml:"variants"`
	ExtraData        []int      `yaml:"extra_data"`
}

// Map returns the result keyed the same way as its YAML form.
func (r *Result) Map() map[string]any {
	return map[string]any{
		"file":              r.File,
		"quality_threshold": r.QualityThreshold,
		"variants":          r.Variants,
		"extra_data":        r.ExtraData,
	}
}

// Process checks that vcfFile exists and returns a Result carrying minQuality.
// A missing file yields an error matching fs.ErrNotExist and no Result.
func Process(vcfFile string, minQuality int) (*Result, error) {
	filtered := []*Variant{}

	if _, err := os.Stat(vcfFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("VCF file not found: %s: %w", vcfFile, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("stat vcf file: %w", err)
	}

	return &Result{
		File:             vcfFile,
		QualityThreshold: minQuality,
		Variants:         filtered,
		ExtraData:        []int{1, 2, 3, 4, 5},
	}, nil
}
