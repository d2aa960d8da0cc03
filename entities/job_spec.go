package entities

import "github.com/go-zoox/jobspec/model"

// JobSpec is everything the service needs to schedule and run a job.
type JobSpec struct {
	cfg *model.Configuration

	engine      model.Optional[string]
	verifier    model.Optional[string]
	publisher   model.Optional[string]
	docker      model.Optional[*ContainerExecutionSpec]
	resources   model.Optional[*ResourceUsageConfig]
	timeout     model.Optional[float64]
	inputs      model.Optional[[]*StorageSpec]
	outputs     model.Optional[[]*StorageSpec]
	annotations model.Optional[[]string]
	deal        model.Optional[*Deal]
	doNotTrack  model.Optional[bool]
}

// JobSpecName is the model name of JobSpec.
const JobSpecName = "JobSpec"

// inputs and outputs are lower case on the wire.
var jobSpecFields = model.Fields{
	{Name: "engine", Wire: "Engine", Type: "string"},
	{Name: "verifier", Wire: "Verifier", Type: "string"},
	{Name: "publisher", Wire: "Publisher", Type: "string"},
	{Name: "docker", Wire: "Docker", Type: ContainerExecutionSpecName},
	{Name: "resources", Wire: "Resources", Type: ResourceUsageConfigName},
	{Name: "timeout", Wire: "Timeout", Type: "number"},
	{Name: "inputs", Wire: "inputs", Type: "[]" + StorageSpecName},
	{Name: "outputs", Wire: "outputs", Type: "[]" + StorageSpecName},
	{Name: "annotations", Wire: "Annotations", Type: "[]string"},
	{Name: "deal", Wire: "Deal", Type: DealName},
	{Name: "doNotTrack", Wire: "DoNotTrack", Type: "bool"},
}

// NewJobSpec creates a JobSpec with the given fields set. Nested models
// decoded from maps share cfg.
func NewJobSpec(cfg *model.Configuration, assignments ...model.Assignment) (*JobSpec, error) {
	j := newJobSpec(cfg)
	if err := model.Build(j, assignments...); err != nil {
		return nil, err
	}

	return j, nil
}

func newJobSpec(cfg *model.Configuration) *JobSpec {
	return &JobSpec{cfg: model.OrDefault(cfg)}
}

func (j *JobSpec) ModelName() string    { return JobSpecName }
func (j *JobSpec) Fields() model.Fields { return jobSpecFields }

// Engine is the executor that runs the job.
func (j *JobSpec) Engine() (string, bool) { return j.engine.Get() }

func (j *JobSpec) SetEngine(v string) error { return j.Assign("engine", v) }

// Verifier checks the results of the job.
func (j *JobSpec) Verifier() (string, bool) { return j.verifier.Get() }

func (j *JobSpec) SetVerifier(v string) error { return j.Assign("verifier", v) }

// Publisher stores the results of the job.
func (j *JobSpec) Publisher() (string, bool) { return j.publisher.Get() }

func (j *JobSpec) SetPublisher(v string) error { return j.Assign("publisher", v) }

// Docker is the container to run when the engine is Docker.
func (j *JobSpec) Docker() (*ContainerExecutionSpec, bool) { return j.docker.Get() }

func (j *JobSpec) SetDocker(v *ContainerExecutionSpec) error { return j.Assign("docker", v) }

// Resources are the compute resources the job asks for.
func (j *JobSpec) Resources() (*ResourceUsageConfig, bool) { return j.resources.Get() }

func (j *JobSpec) SetResources(v *ResourceUsageConfig) error { return j.Assign("resources", v) }

// Timeout is in seconds.
func (j *JobSpec) Timeout() (float64, bool) { return j.timeout.Get() }

func (j *JobSpec) SetTimeout(v float64) error { return j.Assign("timeout", v) }

// Inputs are mounted into the container before the job runs.
func (j *JobSpec) Inputs() ([]*StorageSpec, bool) { return j.inputs.Get() }

func (j *JobSpec) SetInputs(v []*StorageSpec) error { return j.Assign("inputs", v) }

// Outputs are published once the job completes.
func (j *JobSpec) Outputs() ([]*StorageSpec, bool) { return j.outputs.Get() }

func (j *JobSpec) SetOutputs(v []*StorageSpec) error { return j.Assign("outputs", v) }

// Annotations are free form labels used to find the job later.
func (j *JobSpec) Annotations() ([]string, bool) { return j.annotations.Get() }

func (j *JobSpec) SetAnnotations(v []string) error { return j.Assign("annotations", v) }

// Deal is how many nodes run the job and how their results are agreed on.
func (j *JobSpec) Deal() (*Deal, bool) { return j.deal.Get() }

func (j *JobSpec) SetDeal(v *Deal) error { return j.Assign("deal", v) }

// DoNotTrack opts the job out of telemetry.
func (j *JobSpec) DoNotTrack() (bool, bool) { return j.doNotTrack.Get() }

func (j *JobSpec) SetDoNotTrack(v bool) error { return j.Assign("doNotTrack", v) }

// Value implements model.Model.
func (j *JobSpec) Value(name string) (any, bool) {
	switch name {
	case "engine":
		return j.engine.Raw()
	case "verifier":
		return j.verifier.Raw()
	case "publisher":
		return j.publisher.Raw()
	case "docker":
		return j.docker.Raw()
	case "resources":
		return j.resources.Raw()
	case "timeout":
		return j.timeout.Raw()
	case "inputs":
		return j.inputs.Raw()
	case "outputs":
		return j.outputs.Raw()
	case "annotations":
		return j.annotations.Raw()
	case "deal":
		return j.deal.Raw()
	case "doNotTrack":
		return j.doNotTrack.Raw()
	}

	return nil, false
}

// Assign implements model.Model.
func (j *JobSpec) Assign(name string, value any) error {
	t := model.Target{Model: JobSpecName, Field: name}
	switch name {
	case "engine":
		return model.Store(j.cfg, t, &j.engine, value, model.AsString)
	case "verifier":
		return model.Store(j.cfg, t, &j.verifier, value, model.AsString)
	case "publisher":
		return model.Store(j.cfg, t, &j.publisher, value, model.AsString)
	case "docker":
		return model.Store(j.cfg, t, &j.docker, value, j.asDocker)
	case "resources":
		return model.Store(j.cfg, t, &j.resources, value, j.asResources)
	case "timeout":
		return model.Store(j.cfg, t, &j.timeout, value, model.AsNumber)
	case "inputs":
		return model.Store(j.cfg, t, &j.inputs, value, j.asStorageList)
	case "outputs":
		return model.Store(j.cfg, t, &j.outputs, value, j.asStorageList)
	case "annotations":
		return model.Store(j.cfg, t, &j.annotations, value, stringList)
	case "deal":
		return model.Store(j.cfg, t, &j.deal, value, j.asDeal)
	case "doNotTrack":
		return model.Store(j.cfg, t, &j.doNotTrack, value, model.AsBool)
	}

	return model.UnknownField(JobSpecName, name)
}

func (j *JobSpec) asDocker(t model.Target, v any) (*ContainerExecutionSpec, error) {
	return model.AsModel(t, v, func() *ContainerExecutionSpec { return newContainerExecutionSpec(j.cfg) })
}

func (j *JobSpec) asResources(t model.Target, v any) (*ResourceUsageConfig, error) {
	return model.AsModel(t, v, func() *ResourceUsageConfig { return newResourceUsageConfig(j.cfg) })
}

func (j *JobSpec) asDeal(t model.Target, v any) (*Deal, error) {
	return model.AsModel(t, v, func() *Deal { return newDeal(j.cfg) })
}

func (j *JobSpec) asStorageList(t model.Target, v any) ([]*StorageSpec, error) {
	return model.AsList(t, v, func(t model.Target, v any) (*StorageSpec, error) {
		return model.AsModel(t, v, func() *StorageSpec { return newStorageSpec(j.cfg) })
	})
}

func (j *JobSpec) ToDict() model.Dict { return model.ToDict(j) }

func (j *JobSpec) String() string { return model.Format(j) }

// Equal reports whether other is a JobSpec with the same content, nested
// models included.
func (j *JobSpec) Equal(other any) bool {
	o, ok := other.(*JobSpec)
	if !ok {
		return false
	}

	return model.Equal(j, o)
}

func (j *JobSpec) MarshalJSON() ([]byte, error) { return model.Marshal(j) }

func (j *JobSpec) UnmarshalJSON(b []byte) error { return model.Unmarshal(j, b) }
