package commands

import (
	"reflect"
	"testing"

	"github.com/go-zoox/jobspec/entities"
)

type flagValues map[string]any

func (f flagValues) IsSet(name string) bool {
	_, ok := f[name]
	return ok
}

func (f flagValues) String(name string) string {
	s, _ := f[name].(string)
	return s
}

func (f flagValues) StringSlice(name string) []string {
	s, _ := f[name].([]string)
	return s
}

func TestDockerAssignments(t *testing.T) {
	cases := []struct {
		name  string
		flags flagValues
		keys  []string
		json  string
	}{
		{"no flags", flagValues{}, []string{}, `{}`},
		{
			"entrypoint without env",
			flagValues{"entrypoint": []string{"/bin/sh", "-c"}},
			[]string{"Entrypoint"},
			`{"Entrypoint":["/bin/sh","-c"]}`,
		},
		{
			"empty image is still given",
			flagValues{"image": ""},
			[]string{"Image"},
			`{"Image":""}`,
		},
		{
			"every flag",
			flagValues{
				"image":      "ubuntu",
				"entrypoint": []string{"echo"},
				"env":        []string{"A=1"},
				"workdir":    "/work",
			},
			[]string{"Entrypoint", "EnvironmentVariables", "Image", "WorkingDirectory"},
			`{"Entrypoint":["echo"],"EnvironmentVariables":["A=1"],"Image":"ubuntu","WorkingDirectory":"/work"}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := entities.NewContainerExecutionSpec(nil, dockerAssignments(tc.flags)...)
			if err != nil {
				t.Fatalf("NewContainerExecutionSpec() error: %v", err)
			}

			if got := spec.ToDict().Keys(); !reflect.DeepEqual(got, tc.keys) {
				t.Errorf("expected keys %v, got %v", tc.keys, got)
			}

			raw, err := spec.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if string(raw) != tc.json {
				t.Errorf("expected %s, got %s", tc.json, raw)
			}
		})
	}
}
