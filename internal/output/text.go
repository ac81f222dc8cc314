package output

import (
	"fmt"
	"io"

	"primerdesign-core/design"
)

const pairHeader = "rank\tfwd_seq\tfwd_pos\tfwd_tm\tfwd_gc\trev_seq\trev_pos\trev_tm\trev_gc\tpair_anneal\tpair_end_anneal\tproduct\tscore"

const seqHeader = "strand\trank\tseq\tpos\tlength\tgc\ttm"

// WriteText prints one TSV row per accepted pair (PCR) or selected primer
// (sequencing).
func WriteText(w io.Writer, res design.Result, header bool) error {
	if res.Purpose == design.Sequencing {
		return writeSequencingText(w, res, header)
	}
	return writePairText(w, res, header)
}

func writePairText(w io.Writer, res design.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, pairHeader); err != nil {
			return err
		}
	}
	for _, p := range res.Pairs {
		_, err := fmt.Fprintf(w, "%d\t%s\t%d\t%.1f\t%.1f\t%s\t%d\t%.1f\t%.1f\t%d\t%d\t%d\t%.3f\n",
			p.Rank,
			p.Forward.Seq, p.Forward.Position, p.Forward.Tm, p.Forward.GCPercent,
			p.Reverse.Seq, p.Reverse.Position, p.Reverse.Tm, p.Reverse.GCPercent,
			p.PairAnneal, p.PairEndAnneal, p.ProductLength, p.Score,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSequencingText(w io.Writer, res design.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, seqHeader); err != nil {
			return err
		}
	}
	for _, list := range [][]design.Candidate{res.CodingPrimers, res.NonCodingPrimers} {
		for _, c := range list {
			_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%.1f\t%.1f\n",
				c.Strand, c.Rank, c.Seq, c.Position, c.Length, c.GCPercent, c.Tm)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
