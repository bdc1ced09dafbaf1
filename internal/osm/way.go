// Package osm holds the processed geographic features fed to the element
// processors. Coordinates are already projected onto the block grid.
package osm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Node is a projected vertex on the ground plane.
type Node struct {
	X int `yaml:"x" json:"x"`
	Z int `yaml:"z" json:"z"`
}

// Way is an ordered, open polyline with its tags.
type Way struct {
	ID    int64             `yaml:"id" json:"id"`
	Nodes []Node            `yaml:"nodes" json:"nodes"`
	Tags  map[string]string `yaml:"tags" json:"tags"`
}

// Tag returns the value of key and whether it was present.
func (w *Way) Tag(key string) (string, bool) {
	v, ok := w.Tags[key]
	return v, ok
}

// document is the on-disk layout of a ways file. JSON is accepted as well,
// being a subset of YAML.
type document struct {
	Ways []Way `yaml:"ways"`
}

// Decode reads a ways document from r.
func Decode(r io.Reader) ([]Way, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode ways: %w", err)
	}
	return doc.Ways, nil
}

// Bounds returns the inclusive extent of every node in ways.
// ok is false when there are no nodes at all.
func Bounds(ways []Way) (minX, minZ, maxX, maxZ int, ok bool) {
	for _, w := range ways {
		for _, n := range w.Nodes {
			if !ok {
				minX, maxX, minZ, maxZ = n.X, n.X, n.Z, n.Z
				ok = true
				continue
			}
			minX = min(minX, n.X)
			maxX = max(maxX, n.X)
			minZ = min(minZ, n.Z)
			maxZ = max(maxZ, n.Z)
		}
	}
	return minX, minZ, maxX, maxZ, ok
}
