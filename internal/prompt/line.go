package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line reads answers one line at a time.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a line prompter reading from in and writing questions to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed line. io.EOF is returned only when
// nothing was read.
func (l *Line) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask implements Prompter.
func (l *Line) Ask(question string) (string, error) {
	fmt.Fprintf(l.out, "%s:\n> ", question)
	answer, err := l.readLine()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return answer, err
}

// AskRequired implements Prompter.
func (l *Line) AskRequired(question string) (string, error) {
	for {
		fmt.Fprintf(l.out, "%s:\n> ", question)
		answer, err := l.readLine()
		if errors.Is(err, io.EOF) {
			return "", &RequiredError{Question: question}
		}
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		fmt.Fprintln(l.out, "An answer is required.")
	}
}

// Choice implements Prompter. The answer may be an option's index or its
// name, case-insensitively.
func (l *Line) Choice(question string, options []string, def int) (string, error) {
	fallback, err := defaultOption(options, def)
	if err != nil {
		return "", err
	}

	for {
		fmt.Fprintf(l.out, "%s [%s]:\n", question, fallback)
		for i, opt := range options {
			fmt.Fprintf(l.out, "  [%d] %s\n", i, opt)
		}
		fmt.Fprint(l.out, "> ")

		answer, err := l.readLine()
		if errors.Is(err, io.EOF) || (err == nil && answer == "") {
			return fallback, nil
		}
		if err != nil {
			return "", err
		}

		if choice, ok := matchOption(options, answer); ok {
			return choice, nil
		}
		fmt.Fprintf(l.out, "Value %q is invalid.\n", answer)
	}
}

func matchOption(options []string, answer string) (string, bool) {
	if i, err := strconv.Atoi(answer); err == nil {
		if i >= 0 && i < len(options) {
			return options[i], true
		}
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return opt, true
		}
	}
	return "", false
}
