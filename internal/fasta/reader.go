// Package fasta reads the design template from FASTA input. Primer design
// takes a single template, so only the first record matters here.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one FASTA sequence.
type Record struct {
	ID  string
	Seq string
}

// ReadFirst returns the first record from r. Leading non-header lines before
// any '>' are treated as a headerless sequence.
func ReadFirst(r io.Reader) (Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var rec Record
	var sb strings.Builder
	seenHeader := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if seenHeader || sb.Len() > 0 {
				break // next record; first is complete
			}
			seenHeader = true
			fields := strings.Fields(line[1:])
			if len(fields) > 0 {
				rec.ID = fields[0]
			}
			continue
		}
		sb.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return Record{}, err
	}
	rec.Seq = sb.String()
	if rec.Seq == "" {
		return Record{}, fmt.Errorf("fasta: no sequence data")
	}
	return rec, nil
}

// ReadFirstPath reads the first record from path, or stdin for "-".
func ReadFirstPath(path string) (Record, error) {
	if path == "-" {
		return ReadFirst(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()
	return ReadFirst(f)
}
