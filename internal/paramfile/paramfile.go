// Package paramfile loads design-parameter profiles from YAML files.
// Missing keys inherit the request-schema defaults, so a profile only needs
// to state what it changes.
package paramfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"primerdesign-core/design"
)

// profile mirrors design.Parameters with optional fields so absent keys are
// distinguishable from zero values.
type profile struct {
	Purpose          *string  `yaml:"purpose"`
	MinLength        *int     `yaml:"min_length"`
	OptLength        *int     `yaml:"opt_length"`
	MaxLength        *int     `yaml:"max_length"`
	MinTm            *float64 `yaml:"min_tm"`
	OptTm            *float64 `yaml:"opt_tm"`
	MaxTm            *float64 `yaml:"max_tm"`
	MinGC            *float64 `yaml:"min_gc"`
	OptGC            *float64 `yaml:"opt_gc"`
	MaxGC            *float64 `yaml:"max_gc"`
	MaxSelfAnneal    *int     `yaml:"max_self_anneal"`
	MaxSelfEndAnneal *int     `yaml:"max_self_end_anneal"`
	MaxPairAnneal    *int     `yaml:"max_pair_anneal"`
	MaxPairEndAnneal *int     `yaml:"max_pair_end_anneal"`
	BpFromStart      *int     `yaml:"bp_from_start"`
	BpFromStop       *int     `yaml:"bp_from_stop"`
	ParsedLength     *int     `yaml:"parsed_length"`
	SpecificEnds     *bool    `yaml:"specific_ends"`
	DNAConc          *float64 `yaml:"dna_conc"`
	SaltConc         *float64 `yaml:"salt_conc"`
	SeqSpacing       *int     `yaml:"seq_spacing"`
	SeqStrand        *string  `yaml:"seq_strand"`
	MaxResults       *int     `yaml:"max_results"`
}

// Load reads a YAML profile and overlays it on the default parameters.
func Load(path string) (design.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return design.Parameters{}, err
	}
	return Parse(data)
}

// Parse overlays YAML profile data on the default parameters.
func Parse(data []byte) (design.Parameters, error) {
	p := design.DefaultParameters()
	var pf profile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return p, fmt.Errorf("parameter profile: %w", err)
	}

	if pf.Purpose != nil {
		switch strings.ToUpper(*pf.Purpose) {
		case string(design.PCR):
			p.Purpose = design.PCR
		case string(design.Sequencing):
			p.Purpose = design.Sequencing
		default:
			return p, fmt.Errorf("parameter profile: unknown purpose %q", *pf.Purpose)
		}
	}
	if pf.SeqStrand != nil {
		switch strings.ToUpper(*pf.SeqStrand) {
		case string(design.CodingStrand):
			p.SeqStrand = design.CodingStrand
		case string(design.NonCodingStrand), "NONCODING":
			p.SeqStrand = design.NonCodingStrand
		case string(design.BothStrands):
			p.SeqStrand = design.BothStrands
		default:
			return p, fmt.Errorf("parameter profile: unknown strand %q", *pf.SeqStrand)
		}
	}

	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&p.MinLength, pf.MinLength)
	setInt(&p.OptLength, pf.OptLength)
	setInt(&p.MaxLength, pf.MaxLength)
	setFloat(&p.MinTm, pf.MinTm)
	setFloat(&p.OptTm, pf.OptTm)
	setFloat(&p.MaxTm, pf.MaxTm)
	setFloat(&p.MinGC, pf.MinGC)
	setFloat(&p.OptGC, pf.OptGC)
	setFloat(&p.MaxGC, pf.MaxGC)
	setInt(&p.MaxSelfAnneal, pf.MaxSelfAnneal)
	setInt(&p.MaxSelfEndAnneal, pf.MaxSelfEndAnneal)
	setInt(&p.MaxPairAnneal, pf.MaxPairAnneal)
	setInt(&p.MaxPairEndAnneal, pf.MaxPairEndAnneal)
	setInt(&p.BpFromStart, pf.BpFromStart)
	setInt(&p.BpFromStop, pf.BpFromStop)
	setInt(&p.ParsedLength, pf.ParsedLength)
	if pf.SpecificEnds != nil {
		p.SpecificEnds = *pf.SpecificEnds
	}
	setFloat(&p.DNAConc, pf.DNAConc)
	setFloat(&p.SaltConc, pf.SaltConc)
	setInt(&p.SeqSpacing, pf.SeqSpacing)
	setInt(&p.MaxResults, pf.MaxResults)
	return p, nil
}
