package entities

import "github.com/go-zoox/jobspec/model"

// StorageSpec points a job at an input or output volume.
type StorageSpec struct {
	cfg *model.Configuration

	storageSource model.Optional[string]
	name          model.Optional[string]
	cid           model.Optional[string]
	url           model.Optional[string]
	path          model.Optional[string]
	metadata      model.Optional[map[string]string]
}

// StorageSpecName is the model name of StorageSpec.
const StorageSpecName = "StorageSpec"

var storageSpecFields = model.Fields{
	{Name: "storageSource", Wire: "StorageSource", Type: "string"},
	{Name: "name", Wire: "Name", Type: "string"},
	{Name: "cid", Wire: "CID", Type: "string"},
	{Name: "url", Wire: "URL", Type: "string"},
	{Name: "path", Wire: "Path", Type: "string"},
	{Name: "metadata", Wire: "Metadata", Type: "map[string]string"},
}

// NewStorageSpec creates a StorageSpec with the given fields set.
func NewStorageSpec(cfg *model.Configuration, assignments ...model.Assignment) (*StorageSpec, error) {
	s := newStorageSpec(cfg)
	if err := model.Build(s, assignments...); err != nil {
		return nil, err
	}

	return s, nil
}

func newStorageSpec(cfg *model.Configuration) *StorageSpec {
	return &StorageSpec{cfg: model.OrDefault(cfg)}
}

func (s *StorageSpec) ModelName() string    { return StorageSpecName }
func (s *StorageSpec) Fields() model.Fields { return storageSpecFields }

// StorageSource is the storage driver, e.g. IPFS or URLDownload.
func (s *StorageSpec) StorageSource() (string, bool) { return s.storageSource.Get() }

func (s *StorageSpec) SetStorageSource(v string) error { return s.Assign("storageSource", v) }

// Name of the volume.
func (s *StorageSpec) Name() (string, bool) { return s.name.Get() }

func (s *StorageSpec) SetName(v string) error { return s.Assign("name", v) }

// CID is the content identifier for IPFS volumes.
func (s *StorageSpec) CID() (string, bool) { return s.cid.Get() }

func (s *StorageSpec) SetCID(v string) error { return s.Assign("cid", v) }

// URL is the source of URL based volumes.
func (s *StorageSpec) URL() (string, bool) { return s.url.Get() }

func (s *StorageSpec) SetURL(v string) error { return s.Assign("url", v) }

// Path is where the volume is mounted inside the container.
func (s *StorageSpec) Path() (string, bool) { return s.path.Get() }

func (s *StorageSpec) SetPath(v string) error { return s.Assign("path", v) }

// Metadata is free form data attached to the volume.
func (s *StorageSpec) Metadata() (map[string]string, bool) { return s.metadata.Get() }

func (s *StorageSpec) SetMetadata(v map[string]string) error { return s.Assign("metadata", v) }

// Value implements model.Model.
func (s *StorageSpec) Value(name string) (any, bool) {
	switch name {
	case "storageSource":
		return s.storageSource.Raw()
	case "name":
		return s.name.Raw()
	case "cid":
		return s.cid.Raw()
	case "url":
		return s.url.Raw()
	case "path":
		return s.path.Raw()
	case "metadata":
		return s.metadata.Raw()
	}

	return nil, false
}

// Assign implements model.Model.
func (s *StorageSpec) Assign(name string, value any) error {
	t := model.Target{Model: StorageSpecName, Field: name}
	switch name {
	case "storageSource":
		return model.Store(s.cfg, t, &s.storageSource, value, model.AsString)
	case "name":
		return model.Store(s.cfg, t, &s.name, value, model.AsString)
	case "cid":
		return model.Store(s.cfg, t, &s.cid, value, model.AsString)
	case "url":
		return model.Store(s.cfg, t, &s.url, value, model.AsString)
	case "path":
		return model.Store(s.cfg, t, &s.path, value, model.AsString)
	case "metadata":
		return model.Store(s.cfg, t, &s.metadata, value, stringMap)
	}

	return model.UnknownField(StorageSpecName, name)
}

func (s *StorageSpec) ToDict() model.Dict { return model.ToDict(s) }

func (s *StorageSpec) String() string { return model.Format(s) }

// Equal reports whether other is a StorageSpec with the same content.
func (s *StorageSpec) Equal(other any) bool {
	o, ok := other.(*StorageSpec)
	if !ok {
		return false
	}

	return model.Equal(s, o)
}

func (s *StorageSpec) MarshalJSON() ([]byte, error) { return model.Marshal(s) }

func (s *StorageSpec) UnmarshalJSON(b []byte) error { return model.Unmarshal(s, b) }
