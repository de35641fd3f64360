package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-raytracer-optics/pkg/core"
)

func TestDiffuse_AlwaysScattersWithAlbedo(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	diffuse := NewDiffuse(albedo)
	sampler := core.NewSeededSampler(42)

	normals := []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(1, 1, 1).Normalize(),
		core.NewVec3(-0.3, 0.2, 0.9).Normalize(),
	}

	for _, normal := range normals {
		hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: normal, FrontFace: true, Material: diffuse}
		ray := core.NewRay(core.NewVec3(0, 0, 0), normal.Negate())

		for i := 0; i < 500; i++ {
			result, scatters := diffuse.Scatter(ray, hit, sampler)
			require.True(t, scatters, "diffuse should always scatter")
			assert.Equal(t, albedo, result.Attenuation)
			assert.Equal(t, hit.Point, result.Scattered.Origin)
			assert.Equal(t, ray, result.Incoming)
			assert.GreaterOrEqual(t, result.Scattered.Direction.Dot(normal), 0.0,
				"scatter direction should stay on the normal's side")
			assert.False(t, result.Scattered.Direction.NearZero())
		}
	}
}

func TestDiffuse_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	diffuse := NewDiffuse(core.NewVec3(0.8, 0.8, 0.8))
	normal := core.NewVec3(0, 1, 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, FrontFace: true}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// 0.5 on every axis maps to the sphere's center, so the sampled direction is zero
	sampler := &fixedSampler{vec: core.NewVec3(0.5, 0.5, 0.5)}

	result, scatters := diffuse.Scatter(ray, hit, sampler)
	require.True(t, scatters)
	assert.Equal(t, normal, result.Scattered.Direction)
	assert.Equal(t, core.NewVec3(0.8, 0.8, 0.8), result.Attenuation)
}
