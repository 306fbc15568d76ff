package component

type Transform struct {
	X        float64
	Y        float64
	Rotation float64 // unused by current behavior, kept for later
}

var TransformComponent = NewComponent[Transform]()
