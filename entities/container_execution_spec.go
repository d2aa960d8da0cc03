package entities

import "github.com/go-zoox/jobspec/model"

// ContainerExecutionSpec is the container a job runs in.
type ContainerExecutionSpec struct {
	cfg *model.Configuration

	entrypoint           model.Optional[[]string]
	environmentVariables model.Optional[[]string]
	image                model.Optional[string]
	workingDirectory     model.Optional[string]
}

// ContainerExecutionSpecName is the model name of ContainerExecutionSpec.
const ContainerExecutionSpecName = "ContainerExecutionSpec"

var containerExecutionSpecFields = model.Fields{
	{Name: "entrypoint", Wire: "Entrypoint", Type: "[]string"},
	{Name: "environmentVariables", Wire: "EnvironmentVariables", Type: "[]string"},
	{Name: "image", Wire: "Image", Type: "string"},
	{Name: "workingDirectory", Wire: "WorkingDirectory", Type: "string"},
}

// NewContainerExecutionSpec creates a ContainerExecutionSpec with the given
// fields set. A nil cfg uses a default Configuration.
func NewContainerExecutionSpec(cfg *model.Configuration, assignments ...model.Assignment) (*ContainerExecutionSpec, error) {
	s := newContainerExecutionSpec(cfg)
	if err := model.Build(s, assignments...); err != nil {
		return nil, err
	}

	return s, nil
}

func newContainerExecutionSpec(cfg *model.Configuration) *ContainerExecutionSpec {
	return &ContainerExecutionSpec{cfg: model.OrDefault(cfg)}
}

func (s *ContainerExecutionSpec) ModelName() string    { return ContainerExecutionSpecName }
func (s *ContainerExecutionSpec) Fields() model.Fields { return containerExecutionSpecFields }

// Entrypoint optionally overrides the default entrypoint of the image.
func (s *ContainerExecutionSpec) Entrypoint() ([]string, bool) { return s.entrypoint.Get() }

func (s *ContainerExecutionSpec) SetEntrypoint(v []string) error { return s.Assign("entrypoint", v) }

// EnvironmentVariables are the KEY=VALUE pairs the container runs with.
func (s *ContainerExecutionSpec) EnvironmentVariables() ([]string, bool) {
	return s.environmentVariables.Get()
}

func (s *ContainerExecutionSpec) SetEnvironmentVariables(v []string) error {
	return s.Assign("environmentVariables", v)
}

// Image should be pullable by docker.
func (s *ContainerExecutionSpec) Image() (string, bool) { return s.image.Get() }

func (s *ContainerExecutionSpec) SetImage(v string) error { return s.Assign("image", v) }

// WorkingDirectory is the working directory inside the container.
func (s *ContainerExecutionSpec) WorkingDirectory() (string, bool) { return s.workingDirectory.Get() }

func (s *ContainerExecutionSpec) SetWorkingDirectory(v string) error {
	return s.Assign("workingDirectory", v)
}

// Value implements model.Model.
func (s *ContainerExecutionSpec) Value(name string) (any, bool) {
	switch name {
	case "entrypoint":
		return s.entrypoint.Raw()
	case "environmentVariables":
		return s.environmentVariables.Raw()
	case "image":
		return s.image.Raw()
	case "workingDirectory":
		return s.workingDirectory.Raw()
	}

	return nil, false
}

// Assign implements model.Model.
func (s *ContainerExecutionSpec) Assign(name string, value any) error {
	t := model.Target{Model: ContainerExecutionSpecName, Field: name}
	switch name {
	case "entrypoint":
		return model.Store(s.cfg, t, &s.entrypoint, value, stringList)
	case "environmentVariables":
		return model.Store(s.cfg, t, &s.environmentVariables, value, stringList)
	case "image":
		return model.Store(s.cfg, t, &s.image, value, model.AsString)
	case "workingDirectory":
		return model.Store(s.cfg, t, &s.workingDirectory, value, model.AsString)
	}

	return model.UnknownField(ContainerExecutionSpecName, name)
}

func (s *ContainerExecutionSpec) ToDict() model.Dict { return model.ToDict(s) }

func (s *ContainerExecutionSpec) String() string { return model.Format(s) }

// Equal reports whether other is a ContainerExecutionSpec with the same content.
func (s *ContainerExecutionSpec) Equal(other any) bool {
	o, ok := other.(*ContainerExecutionSpec)
	if !ok {
		return false
	}

	return model.Equal(s, o)
}

func (s *ContainerExecutionSpec) MarshalJSON() ([]byte, error) { return model.Marshal(s) }

func (s *ContainerExecutionSpec) UnmarshalJSON(b []byte) error { return model.Unmarshal(s, b) }
