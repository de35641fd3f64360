package material

import (
	"github.com/df07/go-raytracer-optics/pkg/core"
)

// Diffuse represents a matte material that scatters uniformly over the hemisphere
type Diffuse struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering
func (d *Diffuse) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := core.RandomInHemisphere(hit.Normal, sampler)

	// Catch degenerate scatter direction
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: d.Albedo,
	}, true
}
