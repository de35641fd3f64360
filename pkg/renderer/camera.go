package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-raytracer-optics/pkg/core"
)

var (
	ErrDegenerateView = errors.New("look-from and look-at coincide")
	ErrParallelUp     = errors.New("up vector is parallel to the view direction")
	ErrFocusDistance  = errors.New("focus distance must be positive")
	ErrFieldOfView    = errors.New("vertical field of view must be in (0, 180) degrees")
	ErrAspectRatio    = errors.New("aspect ratio must be positive")
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3   // Camera position
	LookAt        core.Vec3   // Point camera is looking at
	Up            core.Vec3   // Up direction (usually 0,1,0)
	VFov          float64     // Vertical field of view in degrees
	AspectRatio   float64     // Width / height
	FocusDistance float64     // Distance from the camera to the viewport plane
	Logger        core.Logger // Optional, nil disables logging
}

// DefaultCameraConfig returns a 16:9 camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		AspectRatio:   16.0 / 9.0,
		FocusDistance: 1.0,
	}
}

// Validate reports every violated precondition of NewCamera.
// NewCamera itself does not require a valid config.
func (c CameraConfig) Validate() error {
	var errs []error
	viewDir := c.LookFrom.Subtract(c.LookAt)
	if viewDir.NearZero() {
		errs = append(errs, fmt.Errorf("look-from %v: %w", c.LookFrom, ErrDegenerateView))
	} else if c.Up.Cross(viewDir).NearZero() {
		errs = append(errs, fmt.Errorf("up %v: %w", c.Up, ErrParallelUp))
	}
	if !(c.FocusDistance > 0) {
		errs = append(errs, fmt.Errorf("focus distance %g: %w", c.FocusDistance, ErrFocusDistance))
	}
	if !(c.VFov > 0 && c.VFov < 180) {
		errs = append(errs, fmt.Errorf("vfov %g: %w", c.VFov, ErrFieldOfView))
	}
	if !(c.AspectRatio > 0) {
		errs = append(errs, fmt.Errorf("aspect ratio %g: %w", c.AspectRatio, ErrAspectRatio))
	}
	return errors.Join(errs...)
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal view basis: right, up, backward
}

// NewCamera creates a camera from the given configuration.
// The focus distance places and scales the viewport; rays always leave from the camera position.
func NewCamera(config CameraConfig) *Camera {
	logger := config.Logger
	if logger == nil {
		logger = core.NewNopLogger()
	}
	if err := config.Validate(); err != nil {
		logger.Warnf("camera: invalid config: %v", err)
	}

	theta := mgl64.DegToRad(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(config.FocusDistance * viewportWidth)
	vertical := v.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	logger.Debugf("camera: viewport %.4fx%.4f at distance %.4f, lower-left %v",
		viewportWidth*config.FocusDistance, viewportHeight*config.FocusDistance,
		config.FocusDistance, lowerLeftCorner)

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
	}
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// GetCameraForward returns the unit direction the camera looks along
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Basis returns the camera's right, up and backward unit vectors
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

func (c *Camera) Origin() core.Vec3          { return c.origin }
func (c *Camera) LowerLeftCorner() core.Vec3 { return c.lowerLeftCorner }
func (c *Camera) Horizontal() core.Vec3      { return c.horizontal }
func (c *Camera) Vertical() core.Vec3        { return c.vertical }
