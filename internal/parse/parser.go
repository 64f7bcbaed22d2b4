// Package parse turns exported chat transcripts into normalized message
// records. Exports have no formal grammar: date conventions vary between
// dialects, message bodies span physical lines, and system notices are
// interleaved with ordinary messages. The parser detects the dialect
// from a lookahead sample, then walks the transcript once, reassembling
// multi-line messages and attributing every line to exactly one record.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

const maxLineSize = 1 * 1024 * 1024 // transcripts can carry long pasted lines

// Parse reads one UTF-8, line-oriented transcript and produces the
// normalized record sequence. Structural failures (no recognizable
// format, no classifiable lines) abort with an error; per-record
// failures are retained in the Result and never abort the batch.
func Parse(r io.Reader) (*Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	return parseLines(lines)
}

// ParseFile parses the transcript at path.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func parseLines(lines []string) (*Result, error) {
	blank := true
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			blank = false
			break
		}
	}
	if blank {
		return nil, ErrEmptyTranscript
	}

	dialect, err := detectDialect(lines)
	if err != nil {
		return nil, err
	}

	result := &Result{Dialect: dialect, Lines: len(lines)}
	asm := assembler{dialect: dialect, result: result}

	for i, line := range lines {
		lineNum := i + 1
		c := ClassifyLine(line, dialect)
		switch c.Class {
		case LineIgnorable:
			result.IgnoredLines++
		case LineMessage, LineSystem:
			asm.start(c, lineNum)
		case LineContinuation:
			if c.CrossDialect {
				result.Warnings = append(result.Warnings, Warning{
					Line: lineNum,
					Msg:  "line matches a different dialect than the one locked in; parsed as continuation",
				})
			}
			if err := asm.extend(c.Body); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
		}
	}
	asm.flush()

	if len(result.Records) == 0 {
		return nil, ErrEmptyTranscript
	}

	sortRecords(result.Records)
	return result, nil
}

// assembler merges continuation lines into the currently open message
// and hands completed messages to the record builder. Flush on end of
// input is mandatory so the last message is never dropped.
type assembler struct {
	dialect Dialect
	result  *Result

	open    bool
	current Classified
	body    []string
	line    int
	ordinal int
}

func (a *assembler) start(c Classified, lineNum int) {
	a.flush()
	a.open = true
	a.current = c
	a.body = a.body[:0]
	a.body = append(a.body, c.Body)
	a.line = lineNum
}

func (a *assembler) extend(text string) error {
	if !a.open {
		return ErrLeadingContinuation
	}
	a.body = append(a.body, text)
	return nil
}

func (a *assembler) flush() {
	if !a.open {
		return
	}
	a.open = false

	rec := Record{
		Ordinal: a.ordinal,
		Author:  a.current.Author,
		Body:    strings.Join(a.body, "\n"),
		Line:    a.line,
	}
	a.ordinal++

	switch {
	case a.current.Class == LineSystem:
		rec.Kind = KindSystem
	case IsMediaPlaceholder(rec.Body):
		rec.Kind = KindMedia
		rec.Body = ""
	default:
		rec.Kind = KindText
		rec.Body = strings.TrimSpace(rec.Body)
	}

	if ts, ok := a.dialect.resolve(a.current.TS); ok {
		rec.Timestamp = ts
		rec.HasTime = true
	} else {
		derr := &DateResolutionError{Line: a.line, Raw: a.current.TSRaw}
		a.result.DateErrors = append(a.result.DateErrors, derr)
		a.result.Warnings = append(a.result.Warnings, Warning{Line: a.line, Msg: derr.Error()})
	}

	a.result.Records = append(a.result.Records, rec)
}

// sortRecords stable-sorts by (timestamp, ordinal). Export order is
// assumed chronological but re-verified here. Records with unresolved
// timestamps inherit the effective instant of the record before them so
// they keep their transcript position instead of collapsing to zero.
func sortRecords(recs []Record) {
	eff := make([]time.Time, len(recs))
	var last time.Time
	for i, r := range recs {
		if r.HasTime {
			last = r.Timestamp
		}
		eff[i] = last
	}

	idx := make([]int, len(recs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return eff[idx[a]].Before(eff[idx[b]])
	})

	sorted := make([]Record, len(recs))
	for i, j := range idx {
		sorted[i] = recs[j]
	}
	copy(recs, sorted)
}
