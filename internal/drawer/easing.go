package drawer

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

// QuadraticOut decelerates towards the end: fast start, slow finish.
func QuadraticOut(t float64) float64 {
	return t * (2 - t)
}
