package model

import (
	"github.com/Carmen-Shannon/oxy-view/common"
)

// ModelBuilderOption is a functional option for configuring a Model.
type ModelBuilderOption func(*meshModel)

// WithName sets the model identifier.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: functional option to set the name
func WithName(name string) ModelBuilderOption {
	return func(m *meshModel) {
		m.name = name
	}
}

// WithPivot sets the initial pivot transform.
//
// Parameters:
//   - pivot: the pivot transform
//
// Returns:
//   - ModelBuilderOption: functional option to set the pivot
func WithPivot(pivot common.Transform) ModelBuilderOption {
	return func(m *meshModel) {
		m.pivot = pivot
	}
}

// WithBoundingRadius manually sets the bounding sphere radius.
// Use this to override the value derived from the computed bounds when a
// manually tuned conservative bound is preferred.
//
// Parameters:
//   - radius: the bounding radius to set
//
// Returns:
//   - ModelBuilderOption: functional option to set the bounding radius
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *meshModel) {
		m.boundingRadiusOverride = radius
	}
}

// WithBoundsWorkers sets the number of workers used for parallel bounds
// reduction. Defaults to NumCPU-1.
//
// Parameters:
//   - workers: worker count (values < 1 are ignored)
//
// Returns:
//   - ModelBuilderOption: functional option to set the worker count
func WithBoundsWorkers(workers int) ModelBuilderOption {
	return func(m *meshModel) {
		if workers >= 1 {
			m.boundsWorkers = workers
		}
	}
}
