package material

import (
	"github.com/df07/go-raytracer-optics/pkg/core"
)

// fixedSampler returns the same values on every draw and counts how often it was asked
type fixedSampler struct {
	value float64
	vec   core.Vec3
	draws int
}

func (f *fixedSampler) Get1D() float64 {
	f.draws++
	return f.value
}

func (f *fixedSampler) Get3D() core.Vec3 {
	f.draws++
	return f.vec
}

var _ core.Sampler = (*fixedSampler)(nil)
