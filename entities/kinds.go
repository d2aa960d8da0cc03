package entities

import (
	"fmt"
	"sort"

	"github.com/go-zoox/jobspec/model"
)

// Engines known by the service.
const (
	EngineDocker   = "Docker"
	EngineWasm     = "Wasm"
	EngineLanguage = "Language"
	EngineNoop     = "Noop"
)

// Storage sources known by the service.
const (
	StorageSourceIPFS             = "IPFS"
	StorageSourceURLDownload      = "URLDownload"
	StorageSourceFilecoinUnsealed = "FilecoinUnsealed"
	StorageSourceFilecoin         = "Filecoin"
	StorageSourceEstuary          = "Estuary"
	StorageSourceInline           = "Inline"
)

// Kinds maps the short names used on the command line to model constructors.
var Kinds = map[string]func(cfg *model.Configuration) model.Model{
	"docker":    func(cfg *model.Configuration) model.Model { return newContainerExecutionSpec(cfg) },
	"job":       func(cfg *model.Configuration) model.Model { return newJobSpec(cfg) },
	"storage":   func(cfg *model.Configuration) model.Model { return newStorageSpec(cfg) },
	"resources": func(cfg *model.Configuration) model.Model { return newResourceUsageConfig(cfg) },
	"deal":      func(cfg *model.Configuration) model.Model { return newDeal(cfg) },
}

// KindNames returns the registered kind names, sorted.
func KindNames() []string {
	names := make([]string, 0, len(Kinds))
	for name := range Kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// New creates an empty model of the given kind.
func New(kind string, cfg *model.Configuration) (model.Model, error) {
	build, ok := Kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q (available: %v)", kind, KindNames())
	}

	return build(cfg), nil
}

// StrictConfiguration returns a Configuration that rejects specs the service
// would refuse anyway: an empty image, a relative working directory, an
// unknown engine or storage source.
func StrictConfiguration() *model.Configuration {
	absolute, _ := model.Matches(`^/`)

	return model.NewConfiguration().
		Register(ContainerExecutionSpecName, "image", model.NotEmpty()).
		Register(ContainerExecutionSpecName, "workingDirectory", absolute).
		Register(JobSpecName, "engine", model.OneOf(EngineDocker, EngineWasm, EngineLanguage, EngineNoop)).
		Register(StorageSpecName, "storageSource", model.OneOf(
			StorageSourceIPFS,
			StorageSourceURLDownload,
			StorageSourceFilecoinUnsealed,
			StorageSourceFilecoin,
			StorageSourceEstuary,
			StorageSourceInline,
		))
}
