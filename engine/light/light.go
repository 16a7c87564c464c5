package light

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	name     string
	position [3]float32
	enabled  bool
}

// Light defines the interface for the single point light feeding the lit
// fragment program.
//
// The light is an infinite-range point source: it has a world-space position
// and nothing else. There is no color, no intensity, no attenuation and no
// shadowing — the lit program evaluates a single ambient + diffuse pair
// against this position. The light's position is marshaled into the Lighting
// uniform block (binding 5) each time the host stages its bindings.
type Light interface {
	// Name retrieves the light identifier.
	//
	// Returns:
	//   - string: the name of the light
	Name() string

	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Enabled returns whether the light contributes to shading.
	//
	// Returns:
	//   - bool: true when the light is active
	Enabled() bool

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x: the x position component
	//   - y: the y position component
	//   - z: the z position component
	SetPosition(x, y, z float32)

	// SetEnabled sets whether the light contributes to shading.
	//
	// Parameters:
	//   - enabled: true to activate the light
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new Light instance configured with the provided options.
// The light defaults to enabled at the world origin.
//
// Parameters:
//   - options: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		enabled: true,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
