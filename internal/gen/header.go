package gen

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"text/template"

	"matprop-generator/internal/description"
	"matprop-generator/internal/stamp"
)

const exportDirectives = `#ifndef MFRONT_SHAREDOBJ
#if defined _WIN32 || defined __CYGWIN__
#define MFRONT_SHAREDOBJ __declspec(dllexport)
#else /* defined _WIN32 || defined __CYGWIN__ */
#define MFRONT_SHAREDOBJ __attribute__((visibility("default")))
#endif /* defined _WIN32 || defined __CYGWIN__ */
#endif /* MFRONT_SHAREDOBJ */
`

type declarationData struct {
	Stamp        string
	Guard        string
	IncludeTypes bool
	Export       string
	Open         string
	Declarations []string
	Close        string
}

var declarationTemplate = template.Must(
	template.New("declaration").
		Parse(`{{.Stamp}}#ifndef {{.Guard}}
#define {{.Guard}}

{{if .IncludeTypes}}#include "TFEL/Config/TFELTypes.hxx"

{{end}}{{.Export}}
{{.Open}}{{range .Declarations}}{{.}}
{{end}}{{.Close}}#endif /* {{.Guard}} */
`))

// EmitDeclaration produces the header of a law: provenance, guard,
// export directives and one declaration per planned signature.
func EmitDeclaration(mp *description.MaterialProperty, fd description.FileDescription, cfg InterfaceConfig) (string, error) {
	mp = description.WithDefaults(mp)

	plan, err := planFor(mp, cfg)
	if err != nil {
		return "", err
	}

	file := cfg.HeaderPath(mp)
	data := declarationData{
		Stamp: stamp.Format(stamp.Header{
			File:        file,
			Brief:       "declaration of the " + cfg.FunctionName(mp) + " material property",
			Author:      fd.Author,
			Date:        fd.Date,
			Description: fd.Description,
		}),
		Guard:        HeaderGuard(path.Base(file)),
		IncludeTypes: plan.HasQuantityVariants(),
		Export:       exportDirectives,
		Open:         openScope(cfg),
		Declarations: declarations(mp, cfg, plan),
		Close:        closeScope(cfg),
	}

	var buf bytes.Buffer
	if err := declarationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing declaration template: %w", err)
	}

	return buf.String(), nil
}

// declarations orders entries per representation: the function variants of
// a representation, then its check-bounds function. Laws without inputs
// list every function first.
func declarations(mp *description.MaterialProperty, cfg InterfaceConfig, plan SignaturePlan) []string {
	var out []string

	if plan.Niladic {
		for _, sig := range plan.Functions {
			out = append(out, functionPrototype(cfg, mp, plan, sig).declaration(cfg))
		}

		for _, sig := range plan.CheckBounds {
			out = append(out, checkBoundsPrototype(cfg, mp, sig).declaration(cfg))
		}

		return out
	}

	for _, rep := range cfg.Representations {
		for _, sig := range plan.Functions {
			if sig.Representation == rep {
				out = append(out, functionPrototype(cfg, mp, plan, sig).declaration(cfg))
			}
		}

		for _, sig := range plan.CheckBounds {
			if sig.Representation == rep {
				out = append(out, checkBoundsPrototype(cfg, mp, sig).declaration(cfg))
			}
		}
	}

	return out
}

// planFor validates mp, plans its signatures under cfg and checks that
// every quantity variant is expressible.
func planFor(mp *description.MaterialProperty, cfg InterfaceConfig) (SignaturePlan, error) {
	if mp == nil {
		return SignaturePlan{}, configErrorf(cfg.Name, "no material property description")
	}

	if err := description.Validate(mp).Error(); err != nil {
		return SignaturePlan{}, err
	}

	plan, err := PlanSignatures(requestFor(mp, cfg))
	if err != nil {
		var ce *ConfigurationError
		if errors.As(err, &ce) && ce.Interface == "" {
			ce.Interface = cfg.Name
		}

		return SignaturePlan{}, err
	}

	if err := checkQuantityTypes(mp, plan, cfg.Name); err != nil {
		return SignaturePlan{}, err
	}

	return plan, nil
}

func openScope(cfg InterfaceConfig) string {
	switch {
	case cfg.ExternC:
		return "#ifdef __cplusplus\nextern \"C\" {\n#endif /* __cplusplus */\n\n"
	case cfg.Namespace != "":
		return "namespace " + cfg.Namespace + " {\n\n"
	default:
		return ""
	}
}

func closeScope(cfg InterfaceConfig) string {
	switch {
	case cfg.ExternC:
		return "#ifdef __cplusplus\n} // end of extern \"C\"\n#endif /* __cplusplus */\n\n"
	case cfg.Namespace != "":
		return "} // end of namespace " + cfg.Namespace + "\n\n"
	default:
		return ""
	}
}
