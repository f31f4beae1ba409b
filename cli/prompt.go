// Package cli holds the terminal helpers used by the binsort command:
// boxed banners, interactive prompts and TTY detection.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// ErrNoChoices is returned by Select when there is nothing to pick from.
var ErrNoChoices = errors.New("nothing to select from")

// IsInteractive reports whether both stdin and stdout are terminals, meaning
// prompts can be shown.
func IsInteractive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Terminal is where prompts read answers from and draw themselves to.
type Terminal struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

// Stdio is the process terminal.
func Stdio() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// Select shows a list of choices and returns the index and value picked.
func (t *Terminal) Select(label string, choices ...string) (int, string, error) {
	if len(choices) == 0 {
		return -1, "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label:  label,
		Items:  choices,
		Stdin:  t.In,
		Stdout: t.Out,
	}

	return sel.Run()
}

// Confirm asks a yes/no question. Answering no is not an error.
func (t *Terminal) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     t.In,
		Stdout:    t.Out,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptInt asks for an integer, re-prompting until the input parses and
// passes validate (which may be nil). An empty answer picks dflt.
func (t *Terminal) PromptInt(label string, dflt int, validate func(int) error) (int, error) {
	parse := func(s string) (int, error) {
		if s == "" {
			return dflt, nil
		}

		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid integer: %w", err)
		}

		if validate != nil {
			if err := validate(v); err != nil {
				return 0, err
			}
		}

		return v, nil
	}

	prompt := promptui.Prompt{
		Label: fmt.Sprintf("%s [%d]", label, dflt),
		Validate: func(s string) error {
			_, err := parse(s)

			return err
		},
		Stdin:  t.In,
		Stdout: t.Out,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parse(txt)
}
