package scene

// Entity is the key kind for scene objects. Using a dedicated kind keeps
// scene keys from mixing with keys issued by other managers.
type Entity struct{}

// Transform is the world-space placement of a scene object.
type Transform struct {
	X, Y     float64
	Rotation float64
}

// Sprite names the texture a scene object renders with.
type Sprite struct {
	Texture string
	Layer   int
}

// Velocity is applied to Transform each tick by MoveAll.
type Velocity struct {
	DX, DY float64
}
