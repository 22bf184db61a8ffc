package rdf

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad/nquads"
)

type Format string

const (
	Turtle Format = "text/turtle"
)

var ErrNotAcceptable = errors.New("not acceptable")

var supportedFormats = map[string]Format{
	string(Turtle): Turtle,
}

func (f Format) ContentType() string {
	return string(f) + "; charset=utf-8"
}

//NegotiateFormat selects a supported serialization format from the value of
//an Accept header. Wildcards are not honoured and an empty header is not
//acceptable.
func NegotiateFormat(accept string) (Format, error) {
	best, bestQ := Format(""), 0.0

	for _, mediaRange := range strings.Split(accept, ",") {
		mediaRange = strings.TrimSpace(mediaRange)
		if mediaRange == "" {
			continue
		}

		mediaType, params, err := mime.ParseMediaType(mediaRange)
		if err != nil {
			continue
		}

		f, ok := supportedFormats[mediaType]
		if !ok {
			continue
		}

		q := 1.0
		if qs, ok := params["q"]; ok {
			q, err = strconv.ParseFloat(qs, 64)
			if err != nil {
				continue
			}
		}

		if q > bestQ {
			best, bestQ = f, q
		}
	}

	if best == "" {
		return "", fmt.Errorf("unsupported accept header %q: %w", accept, ErrNotAcceptable)
	}

	return best, nil
}

//Write serializes the graph in the given format
func Write(w io.Writer, g *Graph, f Format) error {
	switch f {
	case Turtle:
		tw := NewTurtleWriter(w, g.Namespaces())
		if _, err := tw.WriteQuads(g.Quads()); err != nil {
			return err
		}
		return tw.Close()
	}

	return fmt.Errorf("unable to write format %q: %w", f, ErrNotAcceptable)
}

//WriteNQuads dumps the graph as N-Quads, one triple per line
func WriteNQuads(w io.Writer, g *Graph) error {
	nw := nquads.NewWriter(w)
	if _, err := nw.WriteQuads(g.Quads()); err != nil {
		return err
	}
	return nw.Close()
}
