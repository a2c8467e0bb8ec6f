package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on out and reads the answers from in. One Prompter
// should serve a whole command so consecutive prompts share read-ahead input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter wraps in and out. Echo is hidden only when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok {
		p.fd = int(f.Fd())
		p.tty = term.IsTerminal(p.fd)
	}
	return p
}

// Interactive reports whether answers come from a terminal.
func (p *Prompter) Interactive() bool { return p.tty }

// Password prints prompt and reads a line without echo. Piped input is read
// as is, so secrets can be supplied by scripts.
func (p *Prompter) Password(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if p.tty {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return readLine(p.in)
}

// Line prints prompt and reads a visible line.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return readLine(p.in)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
