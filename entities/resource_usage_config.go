package entities

import "github.com/go-zoox/jobspec/model"

// ResourceUsageConfig is the amount of compute a job asks for. Values are
// strings in the units the service understands, e.g. "500m" or "1Gb".
type ResourceUsageConfig struct {
	cfg *model.Configuration

	cpu    model.Optional[string]
	memory model.Optional[string]
	disk   model.Optional[string]
	gpu    model.Optional[string]
}

// ResourceUsageConfigName is the model name of ResourceUsageConfig.
const ResourceUsageConfigName = "ResourceUsageConfig"

var resourceUsageConfigFields = model.Fields{
	{Name: "cpu", Wire: "CPU", Type: "string"},
	{Name: "memory", Wire: "Memory", Type: "string"},
	{Name: "disk", Wire: "Disk", Type: "string"},
	{Name: "gpu", Wire: "GPU", Type: "string"},
}

// NewResourceUsageConfig creates a ResourceUsageConfig with the given fields set.
func NewResourceUsageConfig(cfg *model.Configuration, assignments ...model.Assignment) (*ResourceUsageConfig, error) {
	r := newResourceUsageConfig(cfg)
	if err := model.Build(r, assignments...); err != nil {
		return nil, err
	}

	return r, nil
}

func newResourceUsageConfig(cfg *model.Configuration) *ResourceUsageConfig {
	return &ResourceUsageConfig{cfg: model.OrDefault(cfg)}
}

func (r *ResourceUsageConfig) ModelName() string    { return ResourceUsageConfigName }
func (r *ResourceUsageConfig) Fields() model.Fields { return resourceUsageConfigFields }

func (r *ResourceUsageConfig) CPU() (string, bool)      { return r.cpu.Get() }
func (r *ResourceUsageConfig) SetCPU(v string) error    { return r.Assign("cpu", v) }
func (r *ResourceUsageConfig) Memory() (string, bool)   { return r.memory.Get() }
func (r *ResourceUsageConfig) SetMemory(v string) error { return r.Assign("memory", v) }
func (r *ResourceUsageConfig) Disk() (string, bool)     { return r.disk.Get() }
func (r *ResourceUsageConfig) SetDisk(v string) error   { return r.Assign("disk", v) }
func (r *ResourceUsageConfig) GPU() (string, bool)      { return r.gpu.Get() }
func (r *ResourceUsageConfig) SetGPU(v string) error    { return r.Assign("gpu", v) }

// Value implements model.Model.
func (r *ResourceUsageConfig) Value(name string) (any, bool) {
	switch name {
	case "cpu":
		return r.cpu.Raw()
	case "memory":
		return r.memory.Raw()
	case "disk":
		return r.disk.Raw()
	case "gpu":
		return r.gpu.Raw()
	}

	return nil, false
}

// Assign implements model.Model.
func (r *ResourceUsageConfig) Assign(name string, value any) error {
	t := model.Target{Model: ResourceUsageConfigName, Field: name}
	switch name {
	case "cpu":
		return model.Store(r.cfg, t, &r.cpu, value, model.AsString)
	case "memory":
		return model.Store(r.cfg, t, &r.memory, value, model.AsString)
	case "disk":
		return model.Store(r.cfg, t, &r.disk, value, model.AsString)
	case "gpu":
		return model.Store(r.cfg, t, &r.gpu, value, model.AsString)
	}

	return model.UnknownField(ResourceUsageConfigName, name)
}

func (r *ResourceUsageConfig) ToDict() model.Dict { return model.ToDict(r) }

func (r *ResourceUsageConfig) String() string { return model.Format(r) }

func (r *ResourceUsageConfig) Equal(other any) bool {
	o, ok := other.(*ResourceUsageConfig)
	if !ok {
		return false
	}

	return model.Equal(r, o)
}

func (r *ResourceUsageConfig) MarshalJSON() ([]byte, error) { return model.Marshal(r) }

func (r *ResourceUsageConfig) UnmarshalJSON(b []byte) error { return model.Unmarshal(r, b) }
