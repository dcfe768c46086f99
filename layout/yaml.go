package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/tisgrid/cgra"
	"gopkg.in/yaml.v3"
)

type yamlNode struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Code string `yaml:"code"`
}

type yamlLayout struct {
	Nodes []yamlNode `yaml:"nodes"`
}

// ParseYAML reads the YAML form.
func ParseYAML(r io.Reader) (*Layout, error) {
	var doc yamlLayout

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, err
	}

	l := &Layout{}

	for i, yn := range doc.Nodes {
		n := Node{Coord: cgra.Coord{X: yn.X, Y: yn.Y}}

		for _, line := range strings.Split(yn.Code, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				n.Lines = append(n.Lines, line)
			}
		}

		if err := l.add(n); err != nil {
			return nil, fmt.Errorf("node %d at %v: %w", i, n.Coord, err)
		}
	}

	return l, nil
}
