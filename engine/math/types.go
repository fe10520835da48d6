package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A 4x4 matrix, used for the projection/view transform shared by a draw call. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 2d object.
 */
type Extents2D struct {
	/** @brief The minimum extents of the object. */
	Min Vec2
	/** @brief The maximum extents of the object. */
	Max Vec2
}

/**
 * @brief A rectangle in texture space, expressed in normalized [0,1] UV
 * coordinates with v pointing up. Used to address a single tile within an
 * atlas.
 */
type UVRect struct {
	/** @brief The bottom-left corner of the rectangle. */
	Min Vec2
	/** @brief The top-right corner of the rectangle. */
	Max Vec2
}
