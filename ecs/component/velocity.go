package component

// Velocity is recomputed from state and intent every tick; it is never
// integrated into itself.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
