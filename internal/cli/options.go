// Package cli owns the flag surface of the primerdesign command.
package cli

import (
	"flag"
	"fmt"
	"strings"

	"primerdesign-core/design"

	"primerdesign/internal/version"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Sequence   string
	FastaFile  string
	ParamsFile string

	// Design parameters
	Purpose          string
	MinLength        int
	OptLength        int
	MaxLength        int
	MinTm            float64
	OptTm            float64
	MaxTm            float64
	MinGC            float64
	OptGC            float64
	MaxGC            float64
	MaxSelfAnneal    int
	MaxSelfEndAnneal int
	MaxPairAnneal    int
	MaxPairEndAnneal int
	BpFromStart      int
	BpFromStop       int
	ParsedLength     int
	SpecificEnds     bool
	DNAConc          float64
	SaltConc         float64
	SeqSpacing       int
	SeqStrand        string
	MaxResults       int

	// Output
	Output   string
	Header   bool // true unless --no-header
	Quiet    bool
	Overview bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: PCR and sequencing primer design

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	def := design.DefaultParameters()

	// Input
	fs.StringVar(&opt.Sequence, "sequence", "", "raw DNA template [*]")
	fs.StringVar(&opt.FastaFile, "fasta", "", "FASTA file; first record is the template [*]")
	fs.StringVar(&opt.ParamsFile, "params", "", "YAML parameter profile; flags override its values")

	// Design parameters
	fs.StringVar(&opt.Purpose, "purpose", "pcr", "design purpose: pcr | sequencing [pcr]")
	fs.IntVar(&opt.MinLength, "min-length", def.MinLength, "minimum primer length (nt) [18]")
	fs.IntVar(&opt.OptLength, "opt-length", def.OptLength, "optimal primer length (nt) [20]")
	fs.IntVar(&opt.MaxLength, "max-length", def.MaxLength, "maximum primer length (nt) [21]")
	fs.Float64Var(&opt.MinTm, "min-tm", def.MinTm, "minimum melting temperature (°C) [50]")
	fs.Float64Var(&opt.OptTm, "opt-tm", def.OptTm, "optimal melting temperature (°C) [55]")
	fs.Float64Var(&opt.MaxTm, "max-tm", def.MaxTm, "maximum melting temperature (°C) [65]")
	fs.Float64Var(&opt.MinGC, "min-gc", def.MinGC, "minimum GC content (%) [30]")
	fs.Float64Var(&opt.OptGC, "opt-gc", def.OptGC, "optimal GC content (%) [45]")
	fs.Float64Var(&opt.MaxGC, "max-gc", def.MaxGC, "maximum GC content (%) [60]")
	fs.IntVar(&opt.MaxSelfAnneal, "max-self-anneal", def.MaxSelfAnneal, "self-annealing ceiling [24]")
	fs.IntVar(&opt.MaxSelfEndAnneal, "max-self-end-anneal", def.MaxSelfEndAnneal, "3'-end self-annealing ceiling [12]")
	fs.IntVar(&opt.MaxPairAnneal, "max-pair-anneal", def.MaxPairAnneal, "pair-annealing ceiling [24]")
	fs.IntVar(&opt.MaxPairEndAnneal, "max-pair-end-anneal", def.MaxPairEndAnneal, "3'-end pair-annealing ceiling [12]")
	fs.IntVar(&opt.BpFromStart, "bp-from-start", def.BpFromStart, "forward search-block length (nt) [35]")
	fs.IntVar(&opt.BpFromStop, "bp-from-stop", def.BpFromStop, "reverse search-block length (nt) [35]")
	fs.IntVar(&opt.ParsedLength, "parsed-length", def.ParsedLength, "sequencing window length (nt) [35]")
	fs.BoolVar(&opt.SpecificEnds, "specific-ends", false, "anchor candidates at the block boundaries [false]")
	fs.Float64Var(&opt.DNAConc, "dna-conc", def.DNAConc, "primer concentration (nM) [50]")
	fs.Float64Var(&opt.SaltConc, "salt-conc", def.SaltConc, "monovalent salt concentration (mM) [50]")
	fs.IntVar(&opt.SeqSpacing, "seq-spacing", def.SeqSpacing, "sequencing primer spacing (nt) [250]")
	fs.StringVar(&opt.SeqStrand, "seq-strand", "both", "sequencing strands: coding | noncoding | both [both]")
	fs.IntVar(&opt.MaxResults, "max-results", def.MaxResults, "maximum pairs returned [500]")

	// Output
	fs.StringVar(&opt.Output, "output", OutputText, "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")
	fs.BoolVar(&opt.Overview, "overview", false, "print the config default profile as JSON and exit [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	opt.Header = !noHeader
	if opt.Version || opt.Overview {
		return opt, nil
	}

	// Validation
	if opt.Output != OutputText && opt.Output != OutputJSON {
		return opt, fmt.Errorf("invalid --output %q (text | json)", opt.Output)
	}
	if _, err := parsePurpose(opt.Purpose); err != nil {
		return opt, err
	}
	if _, err := parseStrand(opt.SeqStrand); err != nil {
		return opt, err
	}
	if opt.Sequence == "" && opt.FastaFile == "" {
		return opt, fmt.Errorf("a template is required: --sequence or --fasta")
	}
	if opt.Sequence != "" && opt.FastaFile != "" {
		return opt, fmt.Errorf("--sequence and --fasta are mutually exclusive")
	}
	return opt, nil
}

// ApplyTo overwrites p with every design-parameter flag the user set
// explicitly, leaving the rest of p (defaults or a loaded profile) alone.
func (o Options) ApplyTo(fs *flag.FlagSet, p *design.Parameters) {
	purpose, _ := parsePurpose(o.Purpose)
	strand, _ := parseStrand(o.SeqStrand)
	set := map[string]func(){
		"purpose":             func() { p.Purpose = purpose },
		"min-length":          func() { p.MinLength = o.MinLength },
		"opt-length":          func() { p.OptLength = o.OptLength },
		"max-length":          func() { p.MaxLength = o.MaxLength },
		"min-tm":              func() { p.MinTm = o.MinTm },
		"opt-tm":              func() { p.OptTm = o.OptTm },
		"max-tm":              func() { p.MaxTm = o.MaxTm },
		"min-gc":              func() { p.MinGC = o.MinGC },
		"opt-gc":              func() { p.OptGC = o.OptGC },
		"max-gc":              func() { p.MaxGC = o.MaxGC },
		"max-self-anneal":     func() { p.MaxSelfAnneal = o.MaxSelfAnneal },
		"max-self-end-anneal": func() { p.MaxSelfEndAnneal = o.MaxSelfEndAnneal },
		"max-pair-anneal":     func() { p.MaxPairAnneal = o.MaxPairAnneal },
		"max-pair-end-anneal": func() { p.MaxPairEndAnneal = o.MaxPairEndAnneal },
		"bp-from-start":       func() { p.BpFromStart = o.BpFromStart },
		"bp-from-stop":        func() { p.BpFromStop = o.BpFromStop },
		"parsed-length":       func() { p.ParsedLength = o.ParsedLength },
		"specific-ends":       func() { p.SpecificEnds = o.SpecificEnds },
		"dna-conc":            func() { p.DNAConc = o.DNAConc },
		"salt-conc":           func() { p.SaltConc = o.SaltConc },
		"seq-spacing":         func() { p.SeqSpacing = o.SeqSpacing },
		"seq-strand":          func() { p.SeqStrand = strand },
		"max-results":         func() { p.MaxResults = o.MaxResults },
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := set[f.Name]; ok {
			apply()
		}
	})
}

func parsePurpose(s string) (design.Purpose, error) {
	switch strings.ToLower(s) {
	case "pcr":
		return design.PCR, nil
	case "sequencing":
		return design.Sequencing, nil
	}
	return "", fmt.Errorf("invalid --purpose %q (pcr | sequencing)", s)
}

func parseStrand(s string) (design.Strand, error) {
	switch strings.ToLower(s) {
	case "coding":
		return design.CodingStrand, nil
	case "noncoding", "non-coding":
		return design.NonCodingStrand, nil
	case "both":
		return design.BothStrands, nil
	}
	return "", fmt.Errorf("invalid --seq-strand %q (coding | noncoding | both)", s)
}
