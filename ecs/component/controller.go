package component

// Controller configures movement speed and tracks facing. FacingX is +1
// or -1 on the horizontal axis and retains its last value when neither
// (or both) directions are held.
type Controller struct {
	WalkSpeed float64
	FacingX   float64
}

var ControllerComponent = NewComponent[Controller]()
