package app

import (
	"github.com/specialistvlad/platformid/internal/registry"
	"github.com/specialistvlad/platformid/modules/env"
	"github.com/specialistvlad/platformid/modules/gosrc"
	"github.com/specialistvlad/platformid/modules/hcl"
	"github.com/specialistvlad/platformid/modules/header"
	"github.com/specialistvlad/platformid/modules/json"
	"github.com/specialistvlad/platformid/modules/text"
	"github.com/specialistvlad/platformid/modules/yaml"
)

// coreModules is the definitive list of all output formats that are compiled
// into the platformid binary.
var coreModules = []registry.Module{
	&header.Module{},
	&gosrc.Module{},
	&json.Module{},
	&yaml.Module{},
	&hcl.Module{},
	&env.Module{},
	&text.Module{},
}
