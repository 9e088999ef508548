package graphio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/lvseg/cutgraph"
)

// Format selects the encoding used by WriteResult.
type Format string

const (
	FormatJSON     Format = "json"
	FormatEdgeList Format = "edgelist"
)

// ErrUnknownFormat indicates a Format other than FormatJSON or FormatEdgeList.
var ErrUnknownFormat = errors.New("graphio: unknown result format")

type edgeJSON struct {
	A    int     `json:"a"`
	B    int     `json:"b"`
	Type int     `json:"type"`
	W    float64 `json:"w"`
	W2   float64 `json:"w2"`
}

type statsJSON struct {
	Mode             string  `json:"mode"`
	NodeCount        int     `json:"node_count"`
	Emitted          int     `json:"emitted"`
	Candidates       int     `json:"candidates,omitempty"`
	PrunedInvalid    int     `json:"pruned_invalid,omitempty"`
	PrunedDepth      int     `json:"pruned_depth,omitempty"`
	AngleFallbacks   int     `json:"angle_fallbacks,omitempty"`
	MaxColorDistance float64 `json:"max_color_distance,omitempty"`
	ZeroVariance     bool    `json:"zero_variance,omitempty"`
	MaxCurvature     float64 `json:"max_curvature,omitempty"`
	Relations        int     `json:"relations,omitempty"`
	Repaired         int     `json:"repaired,omitempty"`
}

type resultJSON struct {
	NumEdges int        `json:"num_edges"`
	Edges    []edgeJSON `json:"edges"`
	Stats    statsJSON  `json:"stats"`
}

// WriteResult encodes res to w in the requested format.
func WriteResult(w io.Writer, res cutgraph.Result, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatEdgeList:
		return writeEdgeList(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, res cutgraph.Result) error {
	doc := resultJSON{
		NumEdges: res.NumEdges,
		Edges:    make([]edgeJSON, len(res.Edges)),
		Stats: statsJSON{
			Mode:             string(res.Stats.Mode),
			NodeCount:        res.Stats.NodeCount,
			Emitted:          res.Stats.Emitted,
			Candidates:       res.Stats.Candidates,
			PrunedInvalid:    res.Stats.PrunedInvalid,
			PrunedDepth:      res.Stats.PrunedDepth,
			AngleFallbacks:   res.Stats.AngleFallbacks,
			MaxColorDistance: res.Stats.MaxColorDistance,
			ZeroVariance:     res.Stats.ZeroVariance,
			MaxCurvature:     res.Stats.MaxCurvature,
			Relations:        res.Stats.Relations,
			Repaired:         res.Stats.Repaired,
		},
	}
	for i, e := range res.Edges {
		doc.Edges[i] = edgeJSON{A: e.A, B: e.B, Type: int(e.Type), W: e.W, W2: e.W2}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode result: %w", err)
	}
	return nil
}

// writeEdgeList writes "# num_edges N" followed by one edge per line.
// Floats use the shortest representation that round-trips.
func writeEdgeList(w io.Writer, res cutgraph.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# num_edges %d\n", res.NumEdges)
	buf := make([]byte, 0, 64)
	for _, e := range res.Edges {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(e.A), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.B), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.Type), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, e.W, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, e.W2, 'g', -1, 64)
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write edge list: %w", err)
	}
	return nil
}
