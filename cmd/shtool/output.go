package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-sh/internal/config"
	"github.com/Faultbox/midgard-sh/pkg/sh"
)

// field is one named result value: a float64, a []float64, an sh.Color or
// anything printable.
type field struct {
	name  string
	value any
}

// printer writes results as "name: v0 v1 ..." lines or as a YAML mapping.
type printer struct {
	w         io.Writer
	format    string
	precision int
}

func newPrinter(w io.Writer, format string, precision int) *printer {
	return &printer{w: w, format: format, precision: precision}
}

func (p *printer) print(fields ...field) error {
	if p.format == config.FormatYAML {
		return p.printYAML(fields)
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(p.w, "%s: %s\n", f.name, p.text(f.value)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) text(v any) string {
	switch v := v.(type) {
	case float64:
		return p.float(v)
	case []float64:
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = p.float(x)
		}
		return strings.Join(parts, " ")
	case []string:
		return strings.Join(v, ", ")
	case sh.Color:
		return p.text([]float64{v.R, v.G, v.B})
	default:
		return fmt.Sprint(v)
	}
}

func (p *printer) float(x float64) string {
	if x == 0 {
		x = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(x, 'g', p.precision, 64)
}

func (p *printer) round(x float64) float64 {
	r, _ := strconv.ParseFloat(p.float(x), 64)
	return r
}

// rounded limits floats to the configured precision before YAML encoding.
func (p *printer) rounded(v any) any {
	switch v := v.(type) {
	case float64:
		return p.round(v)
	case []float64:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = p.round(x)
		}
		return out
	case sh.Color:
		return p.rounded([]float64{v.R, v.G, v.B})
	default:
		return v
	}
}

func (p *printer) printYAML(fields []field) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range fields {
		var val yaml.Node
		if err := val.Encode(p.rounded(f.value)); err != nil {
			return fmt.Errorf("encoding %s: %w", f.name, err)
		}
		if val.Kind == yaml.SequenceNode {
			val.Style = yaml.FlowStyle
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: f.name}, &val)
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
