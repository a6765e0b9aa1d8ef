package gen

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	"matprop-generator/internal/description"
	"matprop-generator/internal/stamp"
)

var standardIncludes = []string{
	"<cmath>",
	"<cerrno>",
	"<algorithm>",
	"<stdexcept>",
	`"TFEL/Config/TFELTypes.hxx"`,
	`"TFEL/PhysicalConstants.hxx"`,
	`"TFEL/Math/General/IEEE754.hxx"`,
}

var quantityIncludes = []string{
	`"TFEL/Math/qt.hxx"`,
	`"TFEL/Math/Quantity/qtIO.hxx"`,
}

type definitionData struct {
	Stamp        string
	Includes     []string
	UserIncludes string
	Header       string
	Symbols      string
	Open         string
	Definitions  []string
	Close        string
}

var definitionTemplate = template.Must(
	template.New("definition").
		Parse(`{{.Stamp}}{{range .Includes}}#include {{.}}
{{end}}
{{if .UserIncludes}}{{.UserIncludes}}
{{end}}#include "{{.Header}}"

{{.Symbols}}{{.Open}}{{range .Definitions}}{{.}}
{{end}}{{.Close}}`))

// EmitDefinition produces the source of a law: includes, the metadata
// symbol block and one definition per callable signature, followed by the
// check-bounds definitions.
func EmitDefinition(mp *description.MaterialProperty, fd description.FileDescription, cfg InterfaceConfig) (string, error) {
	mp = description.WithDefaults(mp)

	plan, err := planFor(mp, cfg)
	if err != nil {
		return "", err
	}

	file := cfg.SourcePath(mp)

	includes := standardIncludes
	if mp.UseQuantities {
		includes = append(append([]string(nil), standardIncludes...), quantityIncludes...)
	}

	defs, err := definitions(mp, cfg, plan)
	if err != nil {
		return "", err
	}

	var symbols codeWriter
	writeSymbols(&symbols, MetadataSymbols(cfg, mp, fd))

	data := definitionData{
		Stamp: stamp.Format(stamp.Header{
			File:        file,
			Brief:       "implementation of the " + cfg.FunctionName(mp) + " material property",
			Author:      fd.Author,
			Date:        fd.Date,
			Description: fd.Description,
		}),
		Includes:     includes,
		UserIncludes: strings.TrimRight(mp.Includes, "\n"),
		Header:       path.Base(cfg.HeaderPath(mp)),
		Symbols:      symbols.String(),
		Open:         openScope(cfg),
		Definitions:  defs,
		Close:        closeScope(cfg),
	}

	var buf bytes.Buffer
	if err := definitionTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing definition template: %w", err)
	}

	return buf.String(), nil
}

func definitions(mp *description.MaterialProperty, cfg InterfaceConfig, plan SignaturePlan) ([]string, error) {
	var out []string

	for _, sig := range plan.Callable() {
		var body codeWriter
		if err := writeMaterialPropertyBody(&body, mp, sig); err != nil {
			return nil, fmt.Errorf("definition of %s: %w", cfg.FunctionName(mp), err)
		}

		out = append(out, functionPrototype(cfg, mp, plan, sig).definition(cfg, body.String()))
	}

	for _, sig := range plan.CheckBounds {
		var body codeWriter
		writeCheckBoundsBody(&body, mp, sig)
		out = append(out, checkBoundsPrototype(cfg, mp, sig).definition(cfg, body.String()))
	}

	return out, nil
}
