package component

// Intent is the per-tick input snapshot for one entity. Direction and
// crouch flags carry held state; Shoot and Reload are true only on the
// tick the binding was pressed. Every field is overwritten each tick.
type Intent struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Crouch bool
	Shoot  bool
	Reload bool
}

var IntentComponent = NewComponent[Intent]()
