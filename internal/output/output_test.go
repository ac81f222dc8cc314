package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"primerdesign-core/design"
)

func pcrResult() design.Result {
	pair := design.PairCandidate{
		Forward:       design.Candidate{Seq: "ATGCATGCATGCATGCAT", Position: 1, Tm: 40.6, GCPercent: 44.4, Strand: design.CodingStrand},
		Reverse:       design.Candidate{Seq: "GCATGCATGCATGCATGC", Position: 1, Tm: 45.2, GCPercent: 55.6, Strand: design.NonCodingStrand},
		PairAnneal:    4,
		PairEndAnneal: 4,
		ProductLength: 96,
		Rank:          1,
		Score:         25.374,
	}
	return design.Result{
		Succeeded: true,
		Purpose:   design.PCR,
		BestPair:  &pair,
		Pairs:     []design.PairCandidate{pair},
		PairCount: 1,
	}
}

func TestWriteTextPairs(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, pcrResult(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "rank\tfwd_seq") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1\tATGCATGCATGCATGCAT\t1\t40.6") {
		t.Errorf("unexpected row: %q", lines[1])
	}

	buf.Reset()
	if err := WriteText(&buf, pcrResult(), false); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "rank\t") {
		t.Error("header printed despite being suppressed")
	}
}

func TestWriteTextSequencing(t *testing.T) {
	res := design.Result{
		Succeeded: true,
		Purpose:   design.Sequencing,
		CodingPrimers: []design.Candidate{
			{Seq: "ATGCATGCATGCATGCAT", Position: 3, Length: 18, GCPercent: 44.4, Tm: 40.6, Strand: design.CodingStrand, Rank: 1},
		},
		NonCodingPrimers: []design.Candidate{
			{Seq: "GCATGCATGCATGCATGC", Position: 7, Length: 18, GCPercent: 55.6, Tm: 45.2, Strand: design.NonCodingStrand, Rank: 1},
		},
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, res, true); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "CODING\t1\tATGCATGCATGCATGCAT\t3") {
		t.Errorf("missing coding row in %q", out)
	}
	if !strings.Contains(out, "NON-CODING\t1\t") {
		t.Errorf("missing non-coding row in %q", out)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, pcrResult()); err != nil {
		t.Fatal(err)
	}
	var decoded design.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !decoded.Succeeded || decoded.PairCount != 1 || decoded.BestPair == nil {
		t.Errorf("decoded result lost fields: %+v", decoded)
	}
}
