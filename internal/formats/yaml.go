package formats

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/firegrid/internal/core"
	"github.com/vovakirdan/firegrid/internal/registry"
	"github.com/vovakirdan/firegrid/internal/scenario"
)

func init() {
	registry.Register(YAMLID, func() registry.Format { return YAML{} })
}

// YAMLID is the ID of the sparse YAML format.
const YAMLID = "yaml"

// YAML stores the grid size, a default cell and the cells that differ from
// it. Scenarios are mostly uniform, so this stays short and diffable.
type YAML struct{}

// SelfSized implements registry.Sizer.
func (YAML) SelfSized() bool { return true }

// yamlDoc is the on-disk document.
type yamlDoc struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Default yamlCell   `yaml:"default"`
	Cells   []yamlCell `yaml:"cells,omitempty"`
}

// yamlCell uses the record codes so files read like the flat format.
type yamlCell struct {
	X        int    `yaml:"x,omitempty"`
	Y        int    `yaml:"y,omitempty"`
	State    string `yaml:"state"`
	Type     string `yaml:"type"`
	Moisture int    `yaml:"moisture"`
}

// ID implements registry.Format.
func (YAML) ID() string { return YAMLID }

// Title implements registry.Format.
func (YAML) Title() string { return "Sparse YAML" }

// Extensions implements registry.Format.
func (YAML) Extensions() []string { return []string{".yaml", ".yml"} }

// Encode implements registry.Format.
func (YAML) Encode(w io.Writer, g *scenario.Grid) error {
	def := scenario.NewCell()
	doc := yamlDoc{
		Width:   g.Width(),
		Height:  g.Height(),
		Default: toYAMLCell(core.Coord{}, def),
	}
	for _, c := range g.Coords() {
		cell := *g.Cell(c)
		if cell == def {
			continue
		}
		doc.Cells = append(doc.Cells, toYAMLCell(c, cell))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("formats: encode yaml: %w", err)
	}
	return enc.Close()
}

// Decode implements registry.Format. Non-zero width and height must match
// the document.
func (YAML) Decode(r io.Reader, width, height int) (*scenario.Grid, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("formats: decode yaml: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("formats: yaml: invalid size %dx%d", doc.Width, doc.Height)
	}
	if (width != 0 && width != doc.Width) || (height != 0 && height != doc.Height) {
		return nil, fmt.Errorf("formats: yaml: document is %dx%d, expected %dx%d",
			doc.Width, doc.Height, width, height)
	}

	def := scenario.NewCell()
	if doc.Default.State != "" || doc.Default.Type != "" {
		var err error
		if def, err = fromYAMLCell(doc.Default); err != nil {
			return nil, fmt.Errorf("formats: yaml default: %w", err)
		}
	}

	g := scenario.NewGrid(doc.Width, doc.Height)
	for _, c := range g.Coords() {
		*g.Cell(c) = def
	}
	for i, yc := range doc.Cells {
		pos := core.C(yc.X, yc.Y)
		cell := g.Cell(pos)
		if cell == nil {
			return nil, fmt.Errorf("formats: yaml cell %d: %v outside %dx%d grid", i, pos, doc.Width, doc.Height)
		}
		parsed, err := fromYAMLCell(yc)
		if err != nil {
			return nil, fmt.Errorf("formats: yaml cell %d: %w", i, err)
		}
		*cell = parsed
	}
	return g, nil
}

func toYAMLCell(pos core.Coord, c scenario.Cell) yamlCell {
	return yamlCell{
		X:        pos.X,
		Y:        pos.Y,
		State:    string(c.State().Code()),
		Type:     string(c.VegType().Code()),
		Moisture: c.Moisture(),
	}
}

// fromYAMLCell validates codes the same way as the flat records so both
// formats reject the same inputs.
func fromYAMLCell(yc yamlCell) (scenario.Cell, error) {
	record := fmt.Sprintf("%s,%s,%d,", yc.State, yc.Type, yc.Moisture)
	if yc.Moisture < 0 {
		// Negative moisture clamps to 0 instead of failing.
		record = fmt.Sprintf("%s,%s,0,", yc.State, yc.Type)
	}
	return scenario.ParseCell([]byte(record))
}
