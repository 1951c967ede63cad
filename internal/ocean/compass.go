package ocean

import "math"

// Cardinal is one compass point.
type Cardinal uint8

const (
	North Cardinal = iota
	East
	South
	West
)

// Cardinals in HUD order.
var Cardinals = [4]Cardinal{North, East, South, West}

func (c Cardinal) String() string {
	switch c {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// CompassFor maps a heading to its cardinal label. The quadrants are
// rotated to match the boat sprite: heading zero faces south.
func CompassFor(heading float64) Cardinal {
	h := wrapAngle(heading)
	switch {
	case math.Abs(h) < math.Pi/4:
		return South
	case math.Abs(h) > 3*math.Pi/4:
		return North
	case h > 0:
		return West
	default:
		return East
	}
}

// CompassLabel is one HUD entry.
type CompassLabel struct {
	Dir       Cardinal
	Highlight bool
}

// CompassLabels returns all four labels with exactly one highlighted.
func CompassLabels(heading float64) [4]CompassLabel {
	cur := CompassFor(heading)
	var out [4]CompassLabel
	for i, c := range Cardinals {
		out[i] = CompassLabel{Dir: c, Highlight: c == cur}
	}
	return out
}
