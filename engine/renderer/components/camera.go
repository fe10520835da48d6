package components

import (
	"github.com/eabellows/chickpea/engine/math"
)

/**
 * @brief Represents a 2D camera over the tile world. Position and rotation
 * describe where the camera sits in world space; the view matrix is the
 * inverse of that placement and is rebuilt lazily.
 */
type Camera struct {
	/**
	 * @brief The world position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec2
	/**
	 * @brief The camera roll in radians, counter-clockwise.
	 * NOTE: Do not set this directly, use SetRotation() instead
	 * so the view matrix is recalculated when needed.
	 */
	Rotation float32
	/** @brief Half the world height visible through the camera. */
	Zoom float32
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The cached view matrix. Use GetView() instead of reading this
	 * directly so it is recalculated when needed.
	 */
	ViewMatrix math.Mat4
}

/** @brief The default half-height of the visible world, in world units. */
const DEFAULT_CAMERA_ZOOM float32 = 4.0

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec2Zero()
	c.Rotation = 0
	c.Zoom = DEFAULT_CAMERA_ZOOM
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec2 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec2) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetRotation() float32 {
	return c.Rotation
}

func (c *Camera) SetRotation(radians float32) {
	c.Rotation = radians
	c.IsDirty = true
}

func (c *Camera) SetZoom(zoom float32) {
	if zoom > 0 {
		c.Zoom = zoom
	}
}

// Move shifts the camera by a world-space delta.
func (c *Camera) Move(delta math.Vec2) {
	c.Position = c.Position.Add(delta)
	c.IsDirty = true
}

// Rotate adds to the camera roll.
func (c *Camera) Rotate(radians float32) {
	c.Rotation += radians
	c.IsDirty = true
}

// GetView returns the world-to-camera matrix. The camera placement is a
// rotation followed by a translation, so the view is the reverse translation
// followed by the reverse rotation.
func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		translation := math.NewMat4Translation(math.NewVec3(-c.Position.X, -c.Position.Y, 0))
		rotation := math.NewMat4EulerZ(-c.Rotation)
		c.ViewMatrix = translation.Mul(rotation)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

// Projection returns the orthographic projection for a target with the given
// pixel size. The visible world height is twice the zoom; the width follows
// the target's aspect ratio.
func (c *Camera) Projection(targetWidth, targetHeight uint32) math.Mat4 {
	halfH := c.Zoom
	halfW := halfH * float32(targetWidth) / float32(targetHeight)
	return math.NewMat4Orthographic(-halfW, halfW, -halfH, halfH, -1, 1)
}

// ViewProjection combines view and projection into the single matrix the
// vertex stage consumes: world positions pass through the view first, then
// the orthographic projection.
func (c *Camera) ViewProjection(targetWidth, targetHeight uint32) math.Mat4 {
	return c.GetView().Mul(c.Projection(targetWidth, targetHeight))
}
