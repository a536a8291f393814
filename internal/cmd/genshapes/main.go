// SPDX-License-Identifier: MIT

// Command genshapes writes the per-shape files of the vector and matrix
// packages from one template each, so that every shape shares one body.
//
// Usage (from go generate in the target package directory):
//
//	go run ../internal/cmd/genshapes -kind vector
//	go run ../internal/cmd/genshapes -kind matrix
package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed vector.tmpl matrix.tmpl
var templates embed.FS

// dims are the supported extents for vector lengths, rows and columns.
var dims = []int{2, 3, 4}

var compNames = []string{"X", "Y", "Z", "W"}

// op is one arithmetic operator as the templates render it.
type op struct {
	Name    string // Add, Sub, Mul, Div
	Sym     string // + - * /
	Noun    string // used in the non-assigning doc comment
	LongDoc string // replaces the one-line *Assign doc when set
}

type comp struct {
	Index int
	Upper string
}

type vectorShape struct {
	N      int
	Name   string // Vec3
	Last   int
	Full   bool // the reference shape carries the long-form docs
	Params string
	Tuple  string
	Elems  string
	Comps  []comp
	Ops    []op
}

type matrixShape struct {
	R, C       int
	Name       string // Mat2x3
	Dims       string // 2x3
	Transposed string // Mat3x2
	Len        int
	Full       bool
	Square     bool
	RowParams  string
	RowsM      string
	RowsO      string
	Ops        []op
}

func main() {
	kind := flag.String("kind", "", "shape family to generate: vector or matrix")
	out := flag.String("out", ".", "output directory")
	flag.Parse()

	var err error
	switch *kind {
	case "vector":
		err = generate(*out, "vector.tmpl", vectorShapes())
	case "matrix":
		err = generate(*out, "matrix.tmpl", matrixShapes())
	default:
		err = fmt.Errorf("unknown -kind %q", *kind)
	}
	if err != nil {
		log.Fatalf("genshapes: %v", err)
	}
}

// file is one generated output with its template data.
type file struct {
	name string
	data any
}

func generate(dir, tmplName string, files []file) error {
	tmpl, err := template.ParseFS(templates, tmplName)
	if err != nil {
		return err
	}
	for _, f := range files {
		var buf bytes.Buffer
		if err = tmpl.Execute(&buf, f.data); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("%s: gofmt: %w", f.name, err)
		}
		if err = os.WriteFile(filepath.Join(dir, f.name), src, 0o644); err != nil {
			return err
		}
		log.Printf("genshapes: wrote %s", f.name)
	}

	return nil
}

func vectorShapes() []file {
	var files []file
	for _, n := range dims {
		s := vectorShape{
			N:    n,
			Name: fmt.Sprintf("Vec%d", n),
			Last: n - 1,
			Full: n == 2,
		}
		var params, tuple, elems []string
		for i := 0; i < n; i++ {
			params = append(params, strings.ToLower(compNames[i]))
			tuple = append(tuple, "T")
			elems = append(elems, fmt.Sprintf("v[%d]", i))
			s.Comps = append(s.Comps, comp{Index: i, Upper: compNames[i]})
		}
		s.Params = strings.Join(params, ", ")
		s.Tuple = strings.Join(tuple, ", ")
		s.Elems = strings.Join(elems, ", ")
		s.Ops = ops("product", "quotient")
		if s.Full {
			s.Ops[3].LongDoc = "// DivAssign sets v[i] /= o[i] for every i. Only v is modified.\n" +
				"// Division by zero follows T: ±Inf/NaN for floats, a runtime fault for integers.\n"
		}
		files = append(files, file{name: fmt.Sprintf("vec%d.go", n), data: s})
	}

	return files
}

func matrixShapes() []file {
	var files []file
	for _, r := range dims {
		for _, c := range dims {
			s := matrixShape{
				R:          r,
				C:          c,
				Name:       fmt.Sprintf("Mat%dx%d", r, c),
				Dims:       fmt.Sprintf("%dx%d", r, c),
				Transposed: fmt.Sprintf("Mat%dx%d", c, r),
				Len:        r * c,
				Full:       r == 2 && c == 2,
				Square:     r == c,
				RowParams:  joinIndexed("r%d", r),
				RowsM:      joinIndexed("m[%d][:]", r),
				RowsO:      joinIndexed("o[%d][:]", r),
			}
			s.Ops = ops("Hadamard product", "Hadamard quotient")
			if s.Full {
				s.Ops[3].LongDoc = "// DivAssign sets m[r][c] /= o[r][c] for every (r, c). Only m is modified.\n" +
					"// This is elementwise division, not multiplication by an inverse.\n" +
					"// Division by zero follows T: ±Inf/NaN for floats, a runtime fault for integers.\n"
			}
			files = append(files, file{name: fmt.Sprintf("mat%dx%d.go", r, c), data: s})
		}
	}

	return files
}

func ops(mulNoun, divNoun string) []op {
	return []op{
		{Name: "Add", Sym: "+", Noun: "sum"},
		{Name: "Sub", Sym: "-", Noun: "difference"},
		{Name: "Mul", Sym: "*", Noun: mulNoun},
		{Name: "Div", Sym: "/", Noun: divNoun},
	}
}

// joinIndexed renders format for 0..n-1 joined by ", ".
func joinIndexed(format string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}

	return strings.Join(parts, ", ")
}
