package entities

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-zoox/jobspec/model"
)

const jobPayload = `{
  "Engine": "Docker",
  "Verifier": "Noop",
  "Publisher": "Ipfs",
  "Docker": {
    "Image": "ubuntu:latest",
    "Entrypoint": ["/bin/sh", "-c", "echo hi"],
    "EnvironmentVariables": []
  },
  "Resources": {"CPU": "500m", "Memory": "1Gb"},
  "Timeout": 1800,
  "inputs": [
    {"StorageSource": "IPFS", "CID": "QmHash", "Path": "/inputs"},
    {"StorageSource": "URLDownload", "URL": "https://example.com/data.csv", "Path": "/data", "Metadata": {"owner": "me"}}
  ],
  "outputs": [{"StorageSource": "IPFS", "Name": "outputs", "Path": "/outputs"}],
  "Annotations": ["demo"],
  "Deal": {"Concurrency": 3, "Confidence": 2},
  "DoNotTrack": true,
  "Sharding": {"BatchSize": 1}
}`

func decodeJob(t *testing.T, cfg *model.Configuration) *JobSpec {
	t.Helper()

	j, err := NewJobSpec(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(jobPayload), j); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	return j
}

func TestJobSpecDecode(t *testing.T) {
	j := decodeJob(t, nil)

	docker, ok := j.Docker()
	if !ok {
		t.Fatal("expected docker to be set")
	}
	if image, _ := docker.Image(); image != "ubuntu:latest" {
		t.Errorf("expected ubuntu:latest, got %q", image)
	}
	if env, ok := docker.EnvironmentVariables(); !ok || len(env) != 0 {
		t.Errorf("expected an empty, present environment, got %v (%v)", env, ok)
	}
	if _, ok := docker.WorkingDirectory(); ok {
		t.Error("expected working directory to stay unset")
	}

	inputs, _ := j.Inputs()
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if metadata, _ := inputs[1].Metadata(); !reflect.DeepEqual(metadata, map[string]string{"owner": "me"}) {
		t.Errorf("unexpected metadata: %v", metadata)
	}

	deal, _ := j.Deal()
	if concurrency, _ := deal.Concurrency(); concurrency != 3 {
		t.Errorf("expected concurrency 3, got %d", concurrency)
	}
	if _, ok := deal.MinBids(); ok {
		t.Error("expected min bids to stay unset")
	}

	if timeout, _ := j.Timeout(); timeout != 1800 {
		t.Errorf("expected timeout 1800, got %v", timeout)
	}
	if dnt, ok := j.DoNotTrack(); !ok || !dnt {
		t.Error("expected do not track")
	}

	if j.ToDict().Has("Sharding") {
		t.Error("expected unknown keys to be dropped")
	}
}

func TestJobSpecRoundTrip(t *testing.T) {
	j := decodeJob(t, nil)

	raw, err := json.Marshal(j)
	if err != nil {
		t.Fatal(err)
	}

	decoded := &JobSpec{}
	if err := json.Unmarshal(raw, decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if !j.Equal(decoded) {
		t.Errorf("expected round trip to be equal\n%s\n%s", j, decoded)
	}

	again, err := json.Marshal(decoded)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(raw) {
		t.Errorf("expected identical bytes\n%s\n%s", raw, again)
	}
}

func TestJobSpecNestedSerialization(t *testing.T) {
	docker, _ := NewContainerExecutionSpec(nil, model.With("image", "alpine"))
	input, _ := NewStorageSpec(nil, model.With("storageSource", StorageSourceIPFS), model.With("cid", "QmHash"))
	deal, _ := NewDeal(nil, model.With("concurrency", 1))

	j, err := NewJobSpec(nil,
		model.With("engine", EngineDocker),
		model.With("docker", docker),
		model.With("inputs", []*StorageSpec{input}),
		model.With("deal", deal),
	)
	if err != nil {
		t.Fatal(err)
	}

	d := j.ToDict()
	if got := d.Keys(); !reflect.DeepEqual(got, []string{"Engine", "Docker", "inputs", "Deal"}) {
		t.Errorf("unexpected keys: %v", got)
	}

	nested, _ := d.Get("Docker")
	if dict, ok := nested.(model.Dict); !ok || !dict.Equal(docker.ToDict()) {
		t.Errorf("expected Docker to be the nested spec dict, got %#v", nested)
	}

	list, _ := d.Get("inputs")
	items, ok := list.([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("expected one input, got %#v", list)
	}
	if dict, ok := items[0].(model.Dict); !ok || !dict.Equal(input.ToDict()) {
		t.Errorf("expected input to be the nested storage dict, got %#v", items[0])
	}

	raw, err := json.Marshal(j)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Engine":"Docker","Docker":{"Image":"alpine"},"inputs":[{"StorageSource":"IPFS","CID":"QmHash"}],"Deal":{"Concurrency":1}}`
	if string(raw) != want {
		t.Errorf("expected %s, got %s", want, raw)
	}

	// mutating a nested model is visible through the parent
	if err := docker.SetWorkingDirectory("/work"); err != nil {
		t.Fatal(err)
	}
	nested, _ = j.ToDict().Get("Docker")
	if !nested.(model.Dict).Has("WorkingDirectory") {
		t.Error("expected the parent to serialize the current nested state")
	}
}

func TestJobSpecSetters(t *testing.T) {
	j, _ := NewJobSpec(nil)
	resources, _ := NewResourceUsageConfig(nil, model.With("gpu", "1"))

	if err := j.SetResources(resources); err != nil {
		t.Fatal(err)
	}
	if err := j.SetAnnotations([]string{"a"}); err != nil {
		t.Fatal(err)
	}
	if err := j.SetTimeout(30); err != nil {
		t.Fatal(err)
	}
	if err := j.SetDocker(nil); err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(j)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Docker":null,"Resources":{"GPU":"1"},"Timeout":30,"Annotations":["a"]}`
	if string(raw) != want {
		t.Errorf("expected %s, got %s", want, raw)
	}

	if got, ok := j.Resources(); !ok || got != resources {
		t.Error("expected getter to return the assigned model")
	}
}

func TestJobSpecNestedTypeMismatch(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		field   string
	}{
		{"fractional concurrency", `{"Deal": {"Concurrency": 1.5}}`, "concurrency"},
		{"scalar inputs", `{"inputs": "QmHash"}`, "inputs"},
		{"bad metadata", `{"outputs": [{"Metadata": {"a": 1}}]}`, "metadata"},
		{"string timeout", `{"Timeout": "30"}`, "timeout"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tc.payload), &JobSpec{})

			var mismatch *model.TypeMismatchError
			if !errors.As(err, &mismatch) || mismatch.Field != tc.field {
				t.Errorf("expected mismatch on %s, got %v", tc.field, err)
			}
		})
	}
}

func TestJobSpecFailedDecodeKeepsState(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"bad timeout after engine", `{"Engine": "Wasm", "Timeout": "30"}`},
		{"bad nested deal", `{"Verifier": "Deterministic", "Deal": {"Concurrency": 9223372036854775808.0}}`},
		{"bad second input", `{"inputs": [{"CID": "QmOther"}, {"CID": 1}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := decodeJob(t, nil)
			before, err := json.Marshal(j)
			if err != nil {
				t.Fatal(err)
			}

			if err := json.Unmarshal([]byte(tc.payload), j); !errors.Is(err, model.ErrTypeMismatch) {
				t.Fatalf("expected type mismatch, got %v", err)
			}

			after, err := json.Marshal(j)
			if err != nil {
				t.Fatal(err)
			}
			if string(after) != string(before) {
				t.Errorf("expected the job to be unchanged\n%s\n%s", before, after)
			}
		})
	}
}

func TestJobSpecRejectsNonFiniteTimeout(t *testing.T) {
	j, _ := NewJobSpec(nil, model.With("timeout", 60))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := j.SetTimeout(v); !errors.Is(err, model.ErrTypeMismatch) {
			t.Errorf("SetTimeout(%v): expected type mismatch, got %v", v, err)
		}
	}

	if timeout, _ := j.Timeout(); timeout != 60 {
		t.Errorf("expected timeout to stay 60, got %v", timeout)
	}
	if !j.Equal(j) {
		t.Error("expected reflexive equality")
	}
}

func TestJobSpecStrictConfigurationReachesNestedModels(t *testing.T) {
	payload := `{"Engine": "Docker", "inputs": [{"StorageSource": "Dropbox"}]}`

	j, _ := NewJobSpec(StrictConfiguration())
	if err := json.Unmarshal([]byte(payload), j); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected nested validation error, got %v", err)
	}

	if err := j.SetEngine("Kubernetes"); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected unknown engine to be rejected, got %v", err)
	}
}

func TestKinds(t *testing.T) {
	for _, kind := range KindNames() {
		m, err := New(kind, nil)
		if err != nil {
			t.Fatalf("New(%s) error: %v", kind, err)
		}
		if m.ToDict().Len() != 0 {
			t.Errorf("expected new %s to have no fields set", kind)
		}
	}

	if _, err := New("pod", nil); err == nil {
		t.Error("expected unknown kind to fail")
	}
}
