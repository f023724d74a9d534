package render

const (
	// DefaultFloorDB is the dB value rendered as black.
	DefaultFloorDB = -80.0
	// DefaultCeilingDB is the dB value rendered as white.
	DefaultCeilingDB = 0.0
)

// Option configures rendering.
type Option func(*config)

type config struct {
	floorDB   float64
	ceilingDB float64
	linear    bool
}

func defaultConfig() config {
	return config{
		floorDB:   DefaultFloorDB,
		ceilingDB: DefaultCeilingDB,
	}
}

// WithRangeDB sets the dB window mapped onto black..white.
func WithRangeDB(floor, ceiling float64) Option {
	return func(c *config) {
		c.floorDB = floor
		c.ceilingDB = ceiling
	}
}

// WithLinearScale maps magnitudes linearly between the grid minimum and
// maximum instead of using decibels.
func WithLinearScale() Option {
	return func(c *config) {
		c.linear = true
	}
}
