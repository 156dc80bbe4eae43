package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"organizer/files"
	"organizer/repo"
)

var ErrInvalidNumber = errors.New("некорректное число")

// Console is the line-oriented terminal the menu talks to.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

func (c *Console) Println(a ...any)               { fmt.Fprintln(c.out, a...) }
func (c *Console) Printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }
func (c *Console) Writer() io.Writer              { return c.out }

// ReadLine prints prompt and returns the next line without its line
// ending. io.EOF means the input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	s, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (c *Console) ReadInt(prompt string) (int, error) {
	s, err := c.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

// ReadAmount accepts a decimal comma as well as a point.
func (c *Console) ReadAmount(prompt string) (float64, error) {
	s, err := c.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	v, err := files.ParseAmount(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// ReportCorrupt tells the user a backing collection could not be read.
func (c *Console) ReportCorrupt(ce *repo.CorruptError) {
	c.Printf("Ошибка: Неверный формат файла %s.\n", ce.Location)
}
