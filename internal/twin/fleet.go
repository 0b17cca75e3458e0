package twin

import (
	"fmt"
	"time"

	"ocs_dashboard/internal/models"
)

// Fleet owns the assets of one simulation session, in catalogue order.
// It is not safe for concurrent use; callers serialise access.
type Fleet struct {
	order  []string
	assets map[string]*Asset
}

// NewFleet builds a fleet from the catalogue. Duplicate keys and invalid specs are rejected.
func NewFleet(specs []Spec, rng Rand, clock Clock) (*Fleet, error) {
	if rng == nil {
		rng = NewRand(0)
	}
	if clock == nil {
		clock = time.Now
	}
	f := &Fleet{assets: make(map[string]*Asset, len(specs))}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := f.assets[s.Key]; dup {
			return nil, fmt.Errorf("duplicate asset key %q", s.Key)
		}
		f.assets[s.Key] = NewAsset(s, rng, clock)
		f.order = append(f.order, s.Key)
	}
	return f, nil
}

// Keys returns asset keys in catalogue order.
func (f *Fleet) Keys() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Get returns the live asset for key.
func (f *Fleet) Get(key string) (*Asset, error) {
	a, ok := f.assets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, key)
	}
	return a, nil
}

func (f *Fleet) Snapshot(key string) (models.AssetState, error) {
	a, err := f.Get(key)
	if err != nil {
		return models.AssetState{}, err
	}
	return a.Snapshot(), nil
}

func (f *Fleet) Snapshots() []models.AssetState {
	out := make([]models.AssetState, 0, len(f.order))
	for _, k := range f.order {
		out = append(out, f.assets[k].Snapshot())
	}
	return out
}

// Step updates every asset once and returns the emitted events in catalogue order.
func (f *Fleet) Step() []models.AssetEvent {
	var events []models.AssetEvent
	for _, k := range f.order {
		if ev, ok := f.assets[k].Update(); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Update advances a single asset.
func (f *Fleet) Update(key string) (models.AssetEvent, bool, error) {
	a, err := f.Get(key)
	if err != nil {
		return models.AssetEvent{}, false, err
	}
	ev, ok := a.Update()
	return ev, ok, nil
}

func (f *Fleet) SetLoadFactor(key string, factor float64) error {
	a, err := f.Get(key)
	if err != nil {
		return err
	}
	return a.SetLoadFactor(factor)
}

func (f *Fleet) PerformMaintenance(key string) (models.AssetEvent, error) {
	a, err := f.Get(key)
	if err != nil {
		return models.AssetEvent{}, err
	}
	return a.PerformMaintenance(), nil
}

func (f *Fleet) TriggerFailure(key string) (models.AssetEvent, error) {
	a, err := f.Get(key)
	if err != nil {
		return models.AssetEvent{}, err
	}
	return a.TriggerCatastrophicFailure(), nil
}
