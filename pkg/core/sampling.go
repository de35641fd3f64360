package core

import (
	"math/rand"
	"sync"
)

// Sampler provides random sampling for scattering.
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// NewWorkerSamplers creates n independent samplers with distinct seeds derived from seed
func NewWorkerSamplers(seed int64, n int) []*RandomSampler {
	seeds := rand.New(rand.NewSource(seed))
	samplers := make([]*RandomSampler, n)
	for i := range samplers {
		samplers[i] = NewSeededSampler(seeds.Int63())
	}
	return samplers
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// LockedSampler serializes access to a sampler shared between goroutines
type LockedSampler struct {
	mu      sync.Mutex
	sampler Sampler
}

// NewLockedSampler wraps sampler for concurrent use
func NewLockedSampler(sampler Sampler) *LockedSampler {
	return &LockedSampler{sampler: sampler}
}

func (l *LockedSampler) Get1D() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sampler.Get1D()
}

func (l *LockedSampler) Get3D() Vec3 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sampler.Get3D()
}

// RandomRange returns a uniform value in [min, max)
func RandomRange(sampler Sampler, minVal, maxVal float64) float64 {
	return minVal + (maxVal-minVal)*sampler.Get1D()
}

// RandomInUnitSphere generates a random point inside the unit sphere
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		// Map [0,1)³ onto the [-1,1)³ cube
		p := sampler.Get3D().Multiply(2).Subtract(NewVec3(1, 1, 1))
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomInHemisphere generates a random point in the unit half-ball on the side normal points to
func RandomInHemisphere(normal Vec3, sampler Sampler) Vec3 {
	inUnitSphere := RandomInUnitSphere(sampler)
	if inUnitSphere.Dot(normal) > 0.0 {
		return inUnitSphere
	}
	return inUnitSphere.Negate()
}
