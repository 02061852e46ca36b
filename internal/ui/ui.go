// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lazarus language.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/drhodes/lazarus/internal/common/interface/cell"
	"github.com/drhodes/lazarus/internal/common/interface/literal"
	"github.com/drhodes/lazarus/internal/common/type/errsys"
	"github.com/drhodes/lazarus/internal/reader"
	"github.com/drhodes/lazarus/internal/system/history"
)

const (
	label  = "repl"
	prompt = "> "
	more   = ".. "
)

// Evaluator is the interface for things that evaluate source text.
type Evaluator interface {
	Each(label, text string, fn func(cell.I)) error
	Names() []string
}

// Report writes the value c to out or, if err is not nil, the error to errs.
func Report(out, errs io.Writer, c cell.I, err error) {
	if err != nil {
		fmt.Fprintln(errs, literal.String(errsys.New(err)))

		return
	}

	fmt.Fprintln(out, literal.String(c))
}

// Run prompts for expressions and evaluates them until end of input.
func Run(e Evaluator, out, errs io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(e.Names(), line, pos)
	})

	_ = history.Load(cli.ReadHistory)

	var s session

	for {
		line, err := cli.Prompt(s.prompt())

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			s.reset()

			continue
		case io.EOF:
			fmt.Fprintln(out)

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		text, ok := s.feed(line)
		if !ok {
			continue
		}

		if strings.TrimSpace(text) != "" {
			cli.AppendHistory(strings.ReplaceAll(text, "\n", " "))
		}

		err = e.Each(label, text, func(c cell.I) {
			Report(out, errs, c, nil)
		})
		if err != nil {
			Report(out, errs, nil, err)
		}
	}
}

// complete returns the names that could finish the word before pos.
func complete(names []string, line string, pos int) (string, []string, string) {
	head, tail := line[:pos], line[pos:]

	start := strings.LastIndexAny(head, " \t\n()") + 1
	word := head[start:]

	var cs []string

	for _, n := range names {
		if strings.HasPrefix(n, word) {
			cs = append(cs, n)
		}
	}

	return head[:start], cs, tail
}

// session accumulates lines until the parentheses balance.
type session struct {
	lines []string
}

func (s *session) feed(line string) (string, bool) {
	s.lines = append(s.lines, line)

	text := strings.Join(s.lines, "\n")
	if reader.Depth(text) > 0 {
		return "", false
	}

	s.reset()

	return text, true
}

func (s *session) prompt() string {
	if len(s.lines) > 0 {
		return more
	}

	return prompt
}

func (s *session) reset() {
	s.lines = nil
}
