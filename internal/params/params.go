// Package params loads a tfhe.Parameters set from a YAML document, so a
// deployment can pin a parameter set in a config file instead of
// recompiling against tfhe.Default.
package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-tfhe/tfhe"
)

// Document is the YAML-serializable mirror of tfhe.Parameters. Field names
// are lower_snake_case in the document to match this package's other YAML
// consumers' convention.
type Document struct {
	DimLWE   int     `yaml:"dim_lwe"`
	Alpha0   float64 `yaml:"alpha0"`
	RingN    int     `yaml:"ring_n"`
	RingNBit int     `yaml:"ring_n_bit"`
	Alpha1   float64 `yaml:"alpha1"`
	Bg       uint32  `yaml:"bg"`
	BgBit    uint32  `yaml:"bg_bit"`
	L        int     `yaml:"l"`
	T        int     `yaml:"t"`
	Basebit  uint32  `yaml:"basebit"`
}

// FromParameters converts a tfhe.Parameters value into its YAML-mirrored
// form, for dumping a running configuration back out to disk.
func FromParameters(p tfhe.Parameters) Document {
	return Document{
		DimLWE:   p.DimLWE,
		Alpha0:   p.Alpha0,
		RingN:    p.RingN,
		RingNBit: p.RingNBit,
		Alpha1:   p.Alpha1,
		Bg:       p.Bg,
		BgBit:    p.BgBit,
		L:        p.L,
		T:        p.T,
		Basebit:  p.Basebit,
	}
}

// ToParameters converts a Document into a tfhe.Parameters value and
// validates it.
func (d Document) ToParameters() (tfhe.Parameters, error) {
	p := tfhe.Parameters{
		DimLWE:   d.DimLWE,
		Alpha0:   d.Alpha0,
		RingN:    d.RingN,
		RingNBit: d.RingNBit,
		Alpha1:   d.Alpha1,
		Bg:       d.Bg,
		BgBit:    d.BgBit,
		L:        d.L,
		T:        d.T,
		Basebit:  d.Basebit,
	}
	if err := p.Validate(); err != nil {
		return tfhe.Parameters{}, err
	}
	return p, nil
}

// Default is the YAML mirror of tfhe.Default, for writing out a reference
// config file.
func Default() Document {
	return FromParameters(tfhe.Default())
}

// Load reads and validates a Parameters document from a YAML file.
func Load(path string) (tfhe.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tfhe.Parameters{}, fmt.Errorf("params: Load: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return tfhe.Parameters{}, fmt.Errorf("params: Load: %w", err)
	}
	return doc.ToParameters()
}

// Dump marshals a Parameters set to YAML and writes it to path with mode
// 0o644.
func Dump(path string, p tfhe.Parameters) error {
	data, err := yaml.Marshal(FromParameters(p))
	if err != nil {
		return fmt.Errorf("params: Dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("params: Dump: %w", err)
	}
	return nil
}
