package entities

import "github.com/go-zoox/jobspec/model"

// Deal is the agreement on how many nodes run a job and how many results
// must agree.
type Deal struct {
	cfg *model.Configuration

	concurrency model.Optional[int64]
	confidence  model.Optional[int64]
	minBids     model.Optional[int64]
}

// DealName is the model name of Deal.
const DealName = "Deal"

var dealFields = model.Fields{
	{Name: "concurrency", Wire: "Concurrency", Type: "integer"},
	{Name: "confidence", Wire: "Confidence", Type: "integer"},
	{Name: "minBids", Wire: "MinBids", Type: "integer"},
}

// NewDeal creates a Deal with the given fields set.
func NewDeal(cfg *model.Configuration, assignments ...model.Assignment) (*Deal, error) {
	d := newDeal(cfg)
	if err := model.Build(d, assignments...); err != nil {
		return nil, err
	}

	return d, nil
}

func newDeal(cfg *model.Configuration) *Deal {
	return &Deal{cfg: model.OrDefault(cfg)}
}

func (d *Deal) ModelName() string    { return DealName }
func (d *Deal) Fields() model.Fields { return dealFields }

// Concurrency is the number of nodes the job runs on.
func (d *Deal) Concurrency() (int64, bool) { return d.concurrency.Get() }

func (d *Deal) SetConcurrency(v int64) error { return d.Assign("concurrency", v) }

// Confidence is the number of results that must agree.
func (d *Deal) Confidence() (int64, bool) { return d.confidence.Get() }

func (d *Deal) SetConfidence(v int64) error { return d.Assign("confidence", v) }

// MinBids is the number of bids to wait for before accepting any.
func (d *Deal) MinBids() (int64, bool) { return d.minBids.Get() }

func (d *Deal) SetMinBids(v int64) error { return d.Assign("minBids", v) }

// Value implements model.Model.
func (d *Deal) Value(name string) (any, bool) {
	switch name {
	case "concurrency":
		return d.concurrency.Raw()
	case "confidence":
		return d.confidence.Raw()
	case "minBids":
		return d.minBids.Raw()
	}

	return nil, false
}

// Assign implements model.Model.
func (d *Deal) Assign(name string, value any) error {
	t := model.Target{Model: DealName, Field: name}
	switch name {
	case "concurrency":
		return model.Store(d.cfg, t, &d.concurrency, value, model.AsInteger)
	case "confidence":
		return model.Store(d.cfg, t, &d.confidence, value, model.AsInteger)
	case "minBids":
		return model.Store(d.cfg, t, &d.minBids, value, model.AsInteger)
	}

	return model.UnknownField(DealName, name)
}

func (d *Deal) ToDict() model.Dict { return model.ToDict(d) }

func (d *Deal) String() string { return model.Format(d) }

func (d *Deal) Equal(other any) bool {
	o, ok := other.(*Deal)
	if !ok {
		return false
	}

	return model.Equal(d, o)
}

func (d *Deal) MarshalJSON() ([]byte, error) { return model.Marshal(d) }

func (d *Deal) UnmarshalJSON(b []byte) error { return model.Unmarshal(d, b) }
