package template_engine

import "embed"

//go:embed templates
var TemplateFS embed.FS

type initTemplates struct {
	Ref    TemplateRef
	CONFIG TemplateRef
}

type templates struct {
	INIT initTemplates
}

var TEMPLATES = templates{
	INIT: initTemplates{
		Ref:    TemplateRef{Path: "init", IsDir: true},
		CONFIG: TemplateRef{Path: "init/dtsgen.yaml.tmpl", IsDir: false},
	},
}
