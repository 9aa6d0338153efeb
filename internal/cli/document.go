package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/flexrect"
	"github.com/gogpu/flexrect/tree"
)

// ErrInvalidDocument is returned for a document that parses as YAML but
// does not describe a valid layout tree.
var ErrInvalidDocument = errors.New("invalid document")

// Document is one node of a YAML layout tree.
type Document struct {
	// Name labels the node in output. Unnamed nodes are named after their
	// position: "root", "root.0", "root.0.1" and so on.
	Name string `yaml:"name,omitempty"`

	// Axis is "row" (default) or "column".
	Axis string `yaml:"axis,omitempty"`

	Width     *float64 `yaml:"width,omitempty"`
	Height    *float64 `yaml:"height,omitempty"`
	MinWidth  *float64 `yaml:"min_width,omitempty"`
	MinHeight *float64 `yaml:"min_height,omitempty"`
	MaxWidth  *float64 `yaml:"max_width,omitempty"`
	MaxHeight *float64 `yaml:"max_height,omitempty"`

	// Color is a hex color such as "#ff0000". Nodes without one cycle
	// through blue, red, green and yellow by depth.
	Color string `yaml:"color,omitempty"`

	Children []Document `yaml:"children,omitempty"`
}

// Box is the payload of nodes built from a Document.
type Box struct {
	Name  string
	Color flexrect.DebugColor
}

// RGBA implements color.Color so that renderers pick up the node color.
func (x Box) RGBA() (r, g, b, a uint32) {
	return x.Color.RGBA()
}

// LoadDocument reads and parses a YAML layout document.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument parses a YAML layout document, rejecting unknown fields.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &doc, nil
}

// Layout is a document turned into a layout tree.
type Layout struct {
	Tree *tree.Tree[flexrect.Constraints[Box]]
	Root tree.NodeID
}

// Build converts the document into a layout tree.
func (d *Document) Build() (*Layout, error) {
	t := tree.New[flexrect.Constraints[Box]]()
	root, err := d.build(t, "root", 0)
	if err != nil {
		return nil, err
	}
	return &Layout{Tree: t, Root: root}, nil
}

var depthPalette = []flexrect.DebugColor{flexrect.Blue(), flexrect.Red(), flexrect.Green(), flexrect.Yellow()}

func (d *Document) build(t *tree.Tree[flexrect.Constraints[Box]], path string, depth int) (tree.NodeID, error) {
	c, err := d.constraints(path, depth)
	if err != nil {
		return tree.NoNode, err
	}
	id := t.NewNode(c)
	for i := range d.Children {
		child, err := d.Children[i].build(t, path+"."+strconv.Itoa(i), depth+1)
		if err != nil {
			return tree.NoNode, err
		}
		if err := t.Append(id, child); err != nil {
			return tree.NoNode, err
		}
	}
	return id, nil
}

func (d *Document) constraints(path string, depth int) (flexrect.Constraints[Box], error) {
	var c flexrect.Constraints[Box]

	axis, err := flexrect.ParseAxis(d.Axis)
	if err != nil {
		return c, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
	}
	c.Axis = axis

	box := Box{Name: d.Name, Color: depthPalette[depth%len(depthPalette)]}
	if box.Name == "" {
		box.Name = path
	}
	if d.Color != "" {
		if box.Color, err = flexrect.ParseHex(d.Color); err != nil {
			return c, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, path, err)
		}
	}
	c.Payload = box

	dims := []struct {
		name string
		src  *float64
		dst  *flexrect.Dim
	}{
		{"width", d.Width, &c.Width},
		{"height", d.Height, &c.Height},
		{"min_width", d.MinWidth, &c.MinWidth},
		{"min_height", d.MinHeight, &c.MinHeight},
		{"max_width", d.MaxWidth, &c.MaxWidth},
		{"max_height", d.MaxHeight, &c.MaxHeight},
	}
	for _, dim := range dims {
		if dim.src == nil {
			continue
		}
		if *dim.src < 0 {
			return c, fmt.Errorf("%w: %s: %s must not be negative, got %v", ErrInvalidDocument, path, dim.name, *dim.src)
		}
		*dim.dst = flexrect.Px(*dim.src)
	}
	return c, nil
}

// Resolve lays out the tree. A zero width and height mean the root's own
// size from the document.
func (l *Layout) Resolve(width, height float64) (flexrect.DisplayList[Box], error) {
	if width == 0 && height == 0 {
		return flexrect.ResolveRoot(l.Tree, l.Root)
	}
	return flexrect.Resolve(l.Tree, l.Root, width, height)
}
