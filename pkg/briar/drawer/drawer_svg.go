// Package drawer renders the plan of a composed pipeline as a DOT/SVG graph:
// start and end vertices, one vertex per supplied step in order, with
// layer-disabled steps greyed out and an optional timing overlay colouring
// steps by average duration.
package drawer

import (
	"fmt"
	"os"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/briar-go/briar/internal/store"
	"github.com/briar-go/briar/pkg/briar"
	"github.com/briar-go/briar/pkg/briar/measure"
)

const (
	startVertex = "start"
	endVertex   = "end"

	maxRGB = 240
)

// SVGDrawer renders a plan into an SVG-compatible DOT file.
type SVGDrawer struct {
	graph       graph.Graph[string, string]
	store       store.CustomStore[string, string]
	vertices    map[string]string
	svgFileName string
}

// NewSVGDrawer creates a drawer writing to svgFileName.
func NewSVGDrawer(svgFileName string) *SVGDrawer {
	st := store.NewMemoryStore[string, string]()

	return &SVGDrawer{
		svgFileName: svgFileName,
		graph:       graph.NewWithStore(graph.StringHash, st, graph.Directed()),
		store:       st,
		vertices:    make(map[string]string),
	}
}

// AddPlan loads a composition plan. Enabled steps form the chain from start
// to end; disabled steps hang off the chain greyed and dashed, showing where
// they would sit without altering the sequencing of the enabled ones.
func (d *SVGDrawer) AddPlan(plan briar.Plan) error {
	greyColour, err := colors.RGB(190, 190, 190) //nolint
	if err != nil {
		return errors.Wrap(err, "unable to get colour")
	}
	grey := greyColour.ToHEX().String()

	if err := d.graph.AddVertex(startVertex); err != nil {
		return errors.Wrap(err, "unable to add start vertex")
	}
	if err := d.graph.AddVertex(endVertex); err != nil {
		return errors.Wrap(err, "unable to add end vertex")
	}

	prev := startVertex
	for idx, step := range plan.Steps {
		// Vertex ids carry the position so repeated step names stay distinct.
		id := fmt.Sprintf("%d. %s", idx+1, step.Name)
		d.vertices[step.Name] = id

		if step.Enabled {
			err := d.graph.AddVertex(id)
			if err != nil {
				return errors.Wrapf(err, "unable to add vertex %s", id)
			}
			err = d.graph.AddEdge(prev, id)
			if err != nil {
				return errors.Wrapf(err, "unable to add edge from %s to %s", prev, id)
			}
			prev = id

			continue
		}

		err := d.graph.AddVertex(id,
			graph.VertexAttribute("color", grey),
			graph.VertexAttribute("fontcolor", grey),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add vertex %s", id)
		}
		err = d.graph.AddEdge(prev, id,
			graph.EdgeAttribute("style", "dashed"),
			graph.EdgeAttribute("color", grey),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add edge from %s to %s", prev, id)
		}
	}

	err = d.graph.AddEdge(prev, endVertex)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", prev, endVertex)
	}

	return nil
}

// AddMeasure overlays timing metrics on the loaded plan. Matching vertices
// are labelled with their average duration and coloured on a blue-to-red
// gradient from fastest to slowest; the end vertex carries the total.
func (d *SVGDrawer) AddMeasure(msr measure.Measure) error {
	var minAvg, maxAvg time.Duration

	metrics := msr.AllMetrics()
	for name, metric := range metrics {
		if _, ok := d.vertices[name]; !ok {
			continue
		}
		avg := metric.AVGDuration()
		if avg == 0 {
			continue
		}
		if minAvg == 0 || avg < minAvg {
			minAvg = avg
		}
		if avg > maxAvg {
			maxAvg = avg
		}
	}

	for name, metric := range metrics {
		id, ok := d.vertices[name]
		if !ok {
			continue
		}
		avg := metric.AVGDuration()
		if avg == 0 {
			continue
		}

		fraction := 1.0
		if maxAvg > minAvg {
			fraction = float64(avg-minAvg) / float64(maxAvg-minAvg)
		}

		gradient, err := colors.RGB(uint8(maxRGB*fraction), 0, uint8(maxRGB*(1-fraction))) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		hex := gradient.ToHEX().String()
		d.store.UpdateVertex(id, func(props *graph.VertexProperties) {
			if props.Attributes == nil {
				props.Attributes = map[string]string{}
			}
			props.Attributes["xlabel"] = avg.String()
			props.Attributes["color"] = hex
		})
	}

	if total := msr.TotalDuration(); total > 0 {
		d.store.UpdateVertex(endVertex, func(props *graph.VertexProperties) {
			if props.Attributes == nil {
				props.Attributes = map[string]string{}
			}
			props.Attributes["xlabel"] = total.String()
		})
	}

	return nil
}

// Draw writes the DOT rendering of the loaded plan.
func (d *SVGDrawer) Draw() error {
	file, err := os.Create(d.svgFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.svgFileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.svgFileName)
	}

	return nil
}

var _ Drawer = (*SVGDrawer)(nil)
