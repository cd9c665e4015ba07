package trajectory

// Series labels handed to renderers. Labels are metadata, not data.
const (
	LabelUnloaded = "Unloaded Rope"
	LabelLoaded   = "Realistic"
	LabelIdeal    = "Idealized"

	UnitMeters = "m"
)

// Curve is an ordered sequence of (x, y) samples with display metadata.
type Curve struct {
	Label string
	Unit  string
	X, Y  []float64
}

// Append adds one sample to the curve.
func (c *Curve) Append(x, y float64) {
	c.X = append(c.X, x)
	c.Y = append(c.Y, y)
}

// Len is the number of samples.
func (c Curve) Len() int {
	return len(c.X)
}

// MinY and MaxY report the vertical extent; both return 0 for an empty curve.
func (c Curve) MinY() float64 {
	if len(c.Y) == 0 {
		return 0
	}
	min := c.Y[0]
	for _, y := range c.Y[1:] {
		if y < min {
			min = y
		}
	}
	return min
}

func (c Curve) MaxY() float64 {
	if len(c.Y) == 0 {
		return 0
	}
	max := c.Y[0]
	for _, y := range c.Y[1:] {
		if y > max {
			max = y
		}
	}
	return max
}
