package app

import (
	"path/filepath"
	"strings"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/hcl"
	"github.com/specialistvlad/osmforge/internal/yamlconfig"
)

// coreLoaders maps a building description extension to the loader compiled
// into the binary. Directories are read with the HCL loader.
var coreLoaders = map[string]config.Loader{
	".hcl":  hcl.NewLoader(),
	".yaml": yamlconfig.NewLoader(),
	".yml":  yamlconfig.NewLoader(),
}

func loaderFor(path string) config.Loader {
	if l, ok := coreLoaders[strings.ToLower(filepath.Ext(path))]; ok {
		return l
	}
	return coreLoaders[".hcl"]
}
