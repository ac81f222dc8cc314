package design

// Candidate is a single evaluated primer.
type Candidate struct {
	Seq           string  `json:"seq"`
	Length        int     `json:"length"`
	GCPercent     float64 `json:"gc_percent"`
	Tm            float64 `json:"tm"`
	SelfAnneal    int     `json:"self_anneal"`
	SelfEndAnneal int     `json:"self_end_anneal"`

	// Position is 1-based. For CODING primers it counts from the sequence
	// start; for NON-CODING primers it counts from the sequence end (the
	// position of the primer's 5' end on the original coordinates).
	Position int    `json:"position"`
	Strand   Strand `json:"strand"`

	// Rank is assigned per strand for sequencing selections; zero otherwise.
	Rank int `json:"rank,omitempty"`
}

// PairCandidate is an accepted forward/reverse combination.
type PairCandidate struct {
	Forward       Candidate `json:"forward"`
	Reverse       Candidate `json:"reverse"`
	PairAnneal    int       `json:"pair_anneal"`
	PairEndAnneal int       `json:"pair_end_anneal"`
	ProductLength int       `json:"product_length"`
	Rank          int       `json:"rank"`
	Score         float64   `json:"score"` // lower is better
}

// FilterCounts records survivors after each filter stage.
type FilterCounts struct {
	GC         int `json:"gc"`
	Tm         int `json:"tm"`
	SelfAnneal int `json:"self_anneal"`
}

// Diagnostics reports per-direction filter survivor counts for PCR runs.
type Diagnostics struct {
	Forward FilterCounts `json:"forward"`
	Reverse FilterCounts `json:"reverse"`
}

// Result is the outcome of one design invocation. Failures are reported here,
// never as errors crossing the core boundary, so callers can see which
// constraint exhausted the search.
type Result struct {
	Succeeded bool    `json:"succeeded"`
	Purpose   Purpose `json:"purpose"`

	// PCR mode.
	BestPair        *PairCandidate  `json:"best_pair,omitempty"`
	Pairs           []PairCandidate `json:"pairs,omitempty"`
	PairCount       int             `json:"pair_count"`
	AmplifiedRegion string          `json:"amplified_region,omitempty"`
	Diagnostics     Diagnostics     `json:"diagnostics"`

	// Sequencing mode.
	CodingPrimers    []Candidate `json:"coding_primers,omitempty"`
	NonCodingPrimers []Candidate `json:"noncoding_primers,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func failed(purpose Purpose, diag Diagnostics, msg string) Result {
	return Result{Purpose: purpose, Diagnostics: diag, Error: msg}
}
