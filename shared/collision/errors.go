package collision

import "errors"

var (
	// ErrMissingCollider is returned when a collision query is handed an
	// entity without a hitbox.
	ErrMissingCollider = errors.New("missing collider")

	// ErrNoOwner is returned when a hitbox is built without a transform
	// provider.
	ErrNoOwner = errors.New("hitbox has no owner")
)
