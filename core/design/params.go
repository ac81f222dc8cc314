package design

import "fmt"

// Purpose selects the design mode.
type Purpose string

const (
	PCR        Purpose = "PCR"
	Sequencing Purpose = "SEQUENCING"
)

// Strand identifies which template strand a primer binds.
type Strand string

const (
	CodingStrand    Strand = "CODING"
	NonCodingStrand Strand = "NON-CODING"
	BothStrands     Strand = "BOTH"
)

// Parameters holds every knob of a design request. Zero values are not
// usable; start from DefaultParameters or OverviewDefaults and adjust.
type Parameters struct {
	Purpose Purpose

	// Primer length bounds (nt).
	MinLength int
	OptLength int
	MaxLength int

	// Melting temperature bounds (°C).
	MinTm float64
	OptTm float64
	MaxTm float64

	// GC content bounds (%).
	MinGC float64
	OptGC float64
	MaxGC float64

	// Annealing-score ceilings.
	MaxSelfAnneal    int
	MaxSelfEndAnneal int
	MaxPairAnneal    int // PCR only
	MaxPairEndAnneal int // PCR only

	// Search-block lengths: primer candidates come from the first BpFromStart
	// bases (forward) and the first BpFromStop bases of the reverse
	// complement (reverse). ParsedLength is the sequencing window size.
	BpFromStart  int
	BpFromStop   int
	ParsedLength int

	// SpecificEnds anchors every candidate at its block boundary instead of
	// sliding across all offsets.
	SpecificEnds bool

	// Ionic conditions.
	DNAConc  float64 // nM
	SaltConc float64 // mM

	// Sequencing mode.
	SeqSpacing int
	SeqStrand  Strand

	// Cap on returned PCR pairs.
	MaxResults int
}

// DefaultParameters is the request-schema default profile.
func DefaultParameters() Parameters {
	return Parameters{
		Purpose:          PCR,
		MinLength:        18,
		OptLength:        20,
		MaxLength:        21,
		MinTm:            50,
		OptTm:            55,
		MaxTm:            65,
		MinGC:            30,
		OptGC:            45,
		MaxGC:            60,
		MaxSelfAnneal:    24,
		MaxSelfEndAnneal: 12,
		MaxPairAnneal:    24,
		MaxPairEndAnneal: 12,
		BpFromStart:      35,
		BpFromStop:       35,
		ParsedLength:     35,
		DNAConc:          50,
		SaltConc:         50,
		SeqSpacing:       250,
		SeqStrand:        BothStrands,
		MaxResults:       500,
	}
}

// OverviewDefaults is the config-endpoint default profile. It differs from
// the request profile only in its Tm bounds and is kept as a second named set
// on purpose: unifying the two would silently change an observable default.
func OverviewDefaults() Parameters {
	p := DefaultParameters()
	p.MinTm = 52
	p.OptTm = 56
	p.MaxTm = 60
	return p
}

// Validate rejects parameter sets whose min/opt/max invariants are inverted
// or whose structural knobs cannot drive a search. Callers upstream are
// expected to have validated already; this is the defensive backstop that
// turns a violated invariant into an error instead of silent misbehavior.
func (p Parameters) Validate() error {
	switch p.Purpose {
	case PCR, Sequencing:
	default:
		return fmt.Errorf("unknown purpose %q", p.Purpose)
	}
	if p.MinLength < 1 {
		return fmt.Errorf("min length must be positive, got %d", p.MinLength)
	}
	if !(p.MinLength <= p.OptLength && p.OptLength <= p.MaxLength) {
		return fmt.Errorf("length bounds violate min <= opt <= max: %d/%d/%d",
			p.MinLength, p.OptLength, p.MaxLength)
	}
	if !(p.MinTm <= p.OptTm && p.OptTm <= p.MaxTm) {
		return fmt.Errorf("tm bounds violate min <= opt <= max: %g/%g/%g",
			p.MinTm, p.OptTm, p.MaxTm)
	}
	if !(p.MinGC <= p.OptGC && p.OptGC <= p.MaxGC) {
		return fmt.Errorf("gc bounds violate min <= opt <= max: %g/%g/%g",
			p.MinGC, p.OptGC, p.MaxGC)
	}
	if p.MaxSelfAnneal < 0 || p.MaxSelfEndAnneal < 0 {
		return fmt.Errorf("self-annealing ceilings must not be negative")
	}
	if p.DNAConc <= 0 || p.SaltConc <= 0 {
		return fmt.Errorf("dna and salt concentrations must be positive")
	}
	if p.MaxResults < 1 {
		return fmt.Errorf("max results must be positive, got %d", p.MaxResults)
	}
	switch p.Purpose {
	case PCR:
		if p.BpFromStart < 1 || p.BpFromStop < 1 {
			return fmt.Errorf("search block lengths must be positive")
		}
		if p.MaxPairAnneal < 0 || p.MaxPairEndAnneal < 0 {
			return fmt.Errorf("pair-annealing ceilings must not be negative")
		}
	case Sequencing:
		if p.ParsedLength < 1 {
			return fmt.Errorf("parsed length must be positive, got %d", p.ParsedLength)
		}
		if p.SeqSpacing < 1 {
			return fmt.Errorf("sequencing spacing must be positive, got %d", p.SeqSpacing)
		}
		switch p.SeqStrand {
		case CodingStrand, NonCodingStrand, BothStrands:
		default:
			return fmt.Errorf("unknown strand selection %q", p.SeqStrand)
		}
	}
	return nil
}
