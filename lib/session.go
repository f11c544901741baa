package lib

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	diagLineColor = color.New(color.FgRed, color.Bold)
	diagTextColor = color.New(color.Faint)
)

// Entry is the outcome of one input line, passed to a Recorder.
type Entry struct {
	Line       int
	Expression string
	Postfix    string
	Value      float64
	Err        error
}

type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

type Summary struct {
	Lines  int
	Failed int
}

// Session reads expression lines from In and writes one result line per
// input line to Out. Lines that fail are reported on Diag and skipped.
type Session struct {
	In   io.Reader
	Out  io.Writer
	Diag io.Writer

	Calculator Calculator
	// StopAtBlank ends input at the first empty line. When false, empty lines
	// are skipped and input runs to EOF.
	StopAtBlank bool
	Recorder    Recorder
}

func NewSession(in io.Reader, out io.Writer, diag io.Writer) *Session {
	return &Session{
		In:          in,
		Out:         out,
		Diag:        diag,
		Calculator:  NewCalculator(),
		StopAtBlank: true,
	}
}

// InputLine is one non-empty input line with its 1-based position in the
// source, counting skipped blank lines.
type InputLine struct {
	No   int
	Text string
}

// ReadLines collects input lines up to the first empty line or EOF. With
// stopAtBlank false, empty lines are dropped instead. Lines have no length
// limit.
func ReadLines(r io.Reader, stopAtBlank bool) ([]InputLine, error) {
	reader := bufio.NewReader(r)

	lines := []InputLine{}
	for no := 1; ; no++ {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if err == io.EOF && text == "" {
			break
		}

		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		if text == "" {
			if stopAtBlank {
				break
			}
		} else {
			lines = append(lines, InputLine{No: no, Text: text})
		}

		if err == io.EOF {
			break
		}
	}
	return lines, nil
}

// Run collects all input lines first, then evaluates them in order.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	lines, err := ReadLines(s.In, s.StopAtBlank)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{}
	for _, line := range lines {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		entry, err := s.process(line)
		if err != nil {
			return summary, err
		}
		summary.Lines++
		if entry.Err != nil {
			summary.Failed++
		}

		if s.Recorder != nil {
			if err := s.Recorder.Record(ctx, entry); err != nil {
				return summary, fmt.Errorf("failed to record line %d: %w", entry.Line, err)
			}
		}
	}
	return summary, nil
}

// process evaluates one line. Evaluation failures are reported on Diag and
// returned in the entry; only a failed write to Out is returned as an error.
func (s *Session) process(line InputLine) (Entry, error) {
	entry := Entry{Line: line.No, Expression: line.Text}

	res, err := s.Calculator.Calculate(line.Text)
	if err != nil {
		lineErr := &LineError{Line: line.No, Text: line.Text, Err: err}
		entry.Err = lineErr
		s.report(lineErr)
		return entry, nil
	}

	entry.Postfix = res.PostfixString()
	entry.Value = res.Value
	if _, err := fmt.Fprintln(s.Out, res.String()); err != nil {
		return entry, fmt.Errorf("failed to write result for line %d: %w", line.No, err)
	}
	return entry, nil
}

func (s *Session) report(err *LineError) {
	if s.Diag == nil {
		return
	}
	diagLineColor.Fprintf(s.Diag, "line %d:", err.Line)
	fmt.Fprintf(s.Diag, " %v\n", err.Err)
	diagTextColor.Fprintf(s.Diag, "  %s\n", err.Text)
}
