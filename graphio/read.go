package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvseg/cutgraph"
	"github.com/katalvlaran/lvseg/frame"
)

type pointJSON struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z"`
	R uint8    `json:"r"`
	G uint8    `json:"g"`
	B uint8    `json:"b"`
}

type normalJSON struct {
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Z         *float64 `json:"z"`
	Curvature *float64 `json:"curvature"`
}

type frameJSON struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Points  []pointJSON  `json:"points"`
	Normals []normalJSON `json:"normals"`
}

type relationJSON struct {
	ID0            int       `json:"id_0"`
	ID1            int       `json:"id_1"`
	GroundTruth    *int      `json:"ground_truth,omitempty"`
	Type           *int      `json:"type,omitempty"`
	RelProbability []float64 `json:"rel_probability"`
}

type relationSetJSON struct {
	NodeCount int            `json:"node_count"`
	Relations []relationJSON `json:"relations"`
}

// ReadFrame decodes a frame document and validates it with frame.New.
func ReadFrame(r io.Reader) (*frame.Frame, error) {
	var doc frameJSON
	if err := decodeStrict(r, &doc); err != nil {
		return nil, fmt.Errorf("graphio: decode frame: %w", err)
	}
	points := make([]frame.Point, len(doc.Points))
	for i, p := range doc.Points {
		points[i] = frame.Point{X: p.X, Y: p.Y, Z: orNaN(p.Z), R: p.R, G: p.G, B: p.B}
	}
	normals := make([]frame.Normal, len(doc.Normals))
	for i, n := range doc.Normals {
		normals[i] = frame.Normal{X: orNaN(n.X), Y: orNaN(n.Y), Z: orNaN(n.Z), Curvature: orNaN(n.Curvature)}
	}

	f, err := frame.New(doc.Width, doc.Height, points, normals)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	return f, nil
}

// ReadRelations decodes a relation document. Relations are not validated
// against the node count here; BuildFromRelations does that.
func ReadRelations(r io.Reader) (nodeCount int, relations []cutgraph.Relation, err error) {
	var doc relationSetJSON
	if err := decodeStrict(r, &doc); err != nil {
		return 0, nil, fmt.Errorf("graphio: decode relations: %w", err)
	}
	relations = make([]cutgraph.Relation, len(doc.Relations))
	for i, rj := range doc.Relations {
		rel := cutgraph.Relation{
			ID0:            rj.ID0,
			ID1:            rj.ID1,
			GroundTruth:    cutgraph.UnknownGroundTruth,
			Type:           int(cutgraph.TypeNeighbor),
			RelProbability: rj.RelProbability,
		}
		if rj.GroundTruth != nil {
			rel.GroundTruth = *rj.GroundTruth
		}
		if rj.Type != nil {
			rel.Type = *rj.Type
		}
		relations[i] = rel
	}

	return doc.NodeCount, relations, nil
}

// decodeStrict decodes exactly one JSON value and rejects unknown fields.
func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after document")
	}
	return nil
}

func orNaN(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
