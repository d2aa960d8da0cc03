// Package entities holds the resource models exchanged with the job
// execution service.
package entities

import "github.com/go-zoox/jobspec/model"

func stringList(t model.Target, v any) ([]string, error) {
	return model.AsList(t, v, model.AsString)
}

func stringMap(t model.Target, v any) (map[string]string, error) {
	return model.AsMap(t, v, model.AsString)
}
