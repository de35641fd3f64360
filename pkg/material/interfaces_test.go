package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/df07/go-raytracer-optics/pkg/core"
)

func TestHitRecordSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 1, 0)

	var hit HitRecord
	hit.SetFaceNormal(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), outward)
	assert.True(t, hit.FrontFace, "ray against the outward normal hits the front face")
	assert.Equal(t, outward, hit.Normal)

	hit.SetFaceNormal(core.NewRay(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)), outward)
	assert.False(t, hit.FrontFace, "ray along the outward normal hits the back face")
	assert.Equal(t, core.NewVec3(0, -1, 0), hit.Normal)
}

func TestMaterialImplementations(t *testing.T) {
	materials := map[string]Material{
		"diffuse":    NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)),
		"metal":      NewMetal(core.NewVec3(0.5, 0.5, 0.5), 0),
		"dielectric": NewDielectric(1.5),
	}

	for name, m := range materials {
		t.Run(name, func(t *testing.T) {
			hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), FrontFace: true, Material: m}
			ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
			result, _ := hit.Material.Scatter(ray, hit, core.NewSeededSampler(1))
			assert.Equal(t, ray, result.Incoming)
			assert.Equal(t, hit.Point, result.Scattered.Origin)
		})
	}
}
