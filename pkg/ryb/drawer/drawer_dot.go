package drawer

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/dominikbraun/graph"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/askiada/go-ryb/pkg/ryb"
)

var (
	ErrNoSources = errors.New("recipe needs at least one source color")
	ErrNoResult  = errors.New("result must be set before drawing")
)

const resultVertex = "result"

// DOTDrawer is a drawer that creates a DOT file with the mix recipe graph.
// Every source color becomes a vertex filled with its own color, with an
// edge into the result vertex labelled with its share of the mix.
type DOTDrawer struct {
	graph       graph.Graph[string, string]
	weights     map[string]float64
	dotFileName string
	hasResult   bool
}

// NewDOTDrawer creates a new DOT drawer.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{
		dotFileName: dotFileName,
		graph:       graph.New(graph.StringHash, graph.Directed()),
		weights:     make(map[string]float64),
	}
}

// AddSource adds a source color of the mix with its weight.
func (d *DOTDrawer) AddSource(name string, c ryb.Color[float64], weight float64) error {
	err := d.graph.AddVertex(name, vertexAttributes(c)...)
	if err != nil {
		return errors.Wrapf(err, "unable to add source %s", name)
	}

	d.weights[name] = weight

	return nil
}

// SetResult sets the mixed color and links every source to it. The edge
// labels carry the normalised share of each source.
func (d *DOTDrawer) SetResult(c ryb.Color[float64]) error {
	if len(d.weights) == 0 {
		return ErrNoSources
	}

	err := d.graph.AddVertex(resultVertex, vertexAttributes(c)...)
	if err != nil {
		return errors.Wrap(err, "unable to add result vertex")
	}

	var total float64
	for _, weight := range d.weights {
		total += weight
	}

	for name, weight := range d.weights {
		share := weight
		if total > 0 {
			share = weight / total
		}

		err := d.graph.AddEdge(name, resultVertex,
			graph.EdgeAttribute("label", fmt.Sprintf("%.2f", share)),
		)
		if err != nil {
			return errors.Wrapf(err, "unable to add edge from %s to %s", name, resultVertex)
		}
	}

	d.hasResult = true

	return nil
}

// Draw creates a DOT file with the mix recipe graph.
func (d *DOTDrawer) Draw() error {
	if !d.hasResult {
		return ErrNoResult
	}

	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}

	defer func() {
		_ = file.Close()
	}()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.dotFileName)
	}

	return nil
}

func vertexAttributes(c ryb.Color[float64]) []func(*graph.VertexProperties) {
	return []func(*graph.VertexProperties){
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", c.Hex()),
		graph.VertexAttribute("fontcolor", labelColor(c)),
	}
}

// labelColor picks black or white label text depending on the perceived
// lightness of the fill color.
func labelColor(c ryb.Color[float64]) string {
	rgb := c.RGB()

	light, _, _ := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Lab()
	if light < 0.5 {
		return "white"
	}

	return "black"
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return errors.Wrap(err, "unable to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "graph",
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
		})

		for adjacency, edge := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "unable to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
