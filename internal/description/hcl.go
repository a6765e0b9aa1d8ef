package description

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclDocument is the top-level structure of an HCL description for decoding.
type hclDocument struct {
	Material             string          `hcl:"material,optional"`
	Law                  string          `hcl:"law"`
	Output               *hclVariable    `hcl:"output,block"`
	Inputs               []*hclVariable  `hcl:"input,block"`
	Parameters           []*hclParameter `hcl:"parameter,block"`
	Body                 string          `hcl:"body,optional"`
	Includes             string          `hcl:"includes,optional"`
	UseQuantities        bool            `hcl:"use_quantities,optional"`
	DisableRuntimeChecks bool            `hcl:"disable_runtime_checks,optional"`
	QuantityOverloads    bool            `hcl:"quantity_overloads,optional"`
	UnitSystem           string          `hcl:"unit_system,optional"`
	BuildID              string          `hcl:"build_id,optional"`
	File                 *hclFile        `hcl:"file,block"`
}

type hclVariable struct {
	Name           string     `hcl:"name,label"`
	Type           string     `hcl:"type,optional"`
	ExternalName   string     `hcl:"external_name,optional"`
	Bounds         *hclBounds `hcl:"bounds,block"`
	PhysicalBounds *hclBounds `hcl:"physical_bounds,block"`
}

type hclBounds struct {
	Lower *float64 `hcl:"lower,optional"`
	Upper *float64 `hcl:"upper,optional"`
}

type hclParameter struct {
	Name    string    `hcl:"name,label"`
	Type    string    `hcl:"type,optional"`
	Default cty.Value `hcl:"default,optional"`
}

type hclFile struct {
	Author      string `hcl:"author,optional"`
	Date        string `hcl:"date,optional"`
	Description string `hcl:"description,optional"`
	Source      string `hcl:"source,optional"`
}

// ParseHCL parses HCL data into a Document. filename is only used in
// diagnostics. String attributes are HCL templates, so a body containing
// "${" must escape it as "$${".
func ParseHCL(data []byte, filename string) (*Document, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL description %s: %w", filename, diags)
	}

	var parsed hclDocument

	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL description %s: %w", filename, diags)
	}

	doc, err := parsed.toDocument()
	if err != nil {
		return nil, fmt.Errorf("failed to decode HCL description %s: %w", filename, err)
	}

	applyDefaults(&doc.MaterialProperty)

	return doc, nil
}

func (h *hclDocument) toDocument() (*Document, error) {
	doc := &Document{
		MaterialProperty: MaterialProperty{
			Material:                  h.Material,
			Law:                       h.Law,
			Body:                      h.Body,
			Includes:                  h.Includes,
			UseQuantities:             h.UseQuantities,
			RuntimeChecksDisabled:     h.DisableRuntimeChecks,
			GenerateQuantityOverloads: h.QuantityOverloads,
			UnitSystem:                h.UnitSystem,
			BuildIdentifier:           h.BuildID,
		},
	}

	if h.Output != nil {
		doc.Output = h.Output.toVariable()
	}

	for _, in := range h.Inputs {
		doc.Inputs = append(doc.Inputs, in.toVariable())
	}

	for _, p := range h.Parameters {
		param := Parameter{Name: p.Name, Type: p.Type}

		literal, ok, err := ctyLiteral(p.Default)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}

		if ok {
			param.Default = &literal
		}

		doc.Parameters = append(doc.Parameters, param)
	}

	if h.File != nil {
		doc.File = FileDescription{
			Author:      h.File.Author,
			Date:        h.File.Date,
			Description: h.File.Description,
			Source:      h.File.Source,
		}
	}

	return doc, nil
}

func (v *hclVariable) toVariable() Variable {
	out := Variable{
		Name:         v.Name,
		Type:         v.Type,
		ExternalName: v.ExternalName,
	}

	if v.Bounds != nil {
		out.Bounds = &Bounds{Lower: v.Bounds.Lower, Upper: v.Bounds.Upper}
	}

	if v.PhysicalBounds != nil {
		out.PhysicalBounds = &Bounds{Lower: v.PhysicalBounds.Lower, Upper: v.PhysicalBounds.Upper}
	}

	return out
}

// ctyLiteral renders a parameter default as target-language literal text.
// Strings are taken verbatim so expressions such as "3 * 2.1e9" pass through.
func ctyLiteral(v cty.Value) (string, bool, error) {
	if v == cty.NilVal || v.IsNull() {
		return "", false, nil
	}

	if !v.IsKnown() {
		return "", false, fmt.Errorf("default value is not known")
	}

	switch v.Type() {
	case cty.Number:
		return v.AsBigFloat().Text('g', -1), true, nil
	case cty.String:
		return v.AsString(), true, nil
	case cty.Bool:
		if v.True() {
			return "true", true, nil
		}

		return "false", true, nil
	default:
		return "", false, fmt.Errorf("unsupported default value type %s", v.Type().FriendlyName())
	}
}
