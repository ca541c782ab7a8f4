package generate

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

//go:embed names.txt
var embeddedNames string

// Names draws first and last names from a list of "First Last" pairs.
type Names struct {
	first []string
	last  []string
	gen   *Generator
}

// ParseNames reads one "First Last" pair per line. Blank lines are skipped.
func ParseNames(r io.Reader) (*Names, error) {
	n := &Names{gen: Default}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedNames, line, text)
		}
		n.first = append(n.first, fields[0])
		n.last = append(n.last, fields[len(fields)-1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read names: %w", err)
	}
	return n, nil
}

// LoadNames reads a name list from path.
func LoadNames(path string) (*Names, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open names: %w", err)
	}
	defer f.Close()
	return ParseNames(f)
}

var defaultNames = sync.OnceValues(func() (*Names, error) {
	return ParseNames(strings.NewReader(embeddedNames))
})

// DefaultNames returns the built-in name list.
func DefaultNames() *Names {
	n, err := defaultNames()
	if err != nil {
		panic(fmt.Sprintf("generate: built-in name list: %v", err))
	}
	return n
}

// WithGenerator returns a copy of n that draws from g.
func (n *Names) WithGenerator(g *Generator) *Names {
	return &Names{first: n.first, last: n.last, gen: g}
}

// Len returns the number of name pairs.
func (n *Names) Len() int {
	return len(n.first)
}

// First returns a random first name.
func (n *Names) First() (string, error) {
	return n.pick(n.first)
}

// Last returns a random last name.
func (n *Names) Last() (string, error) {
	return n.pick(n.last)
}

// MiddleInitial returns a random uppercase letter.
func (n *Names) MiddleInitial() string {
	return string(n.gen.Upper())
}

// Full returns "First M. Last".
func (n *Names) Full() (string, error) {
	first, err := n.First()
	if err != nil {
		return "", err
	}
	last, err := n.Last()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s. %s", first, n.MiddleInitial(), last), nil
}

func (n *Names) pick(list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrNoNames
	}
	i, _ := n.gen.IntN(len(list))
	return list[i], nil
}
