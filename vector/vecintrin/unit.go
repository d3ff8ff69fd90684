package vecintrin

import "fmt"

// Float is a vector of float32 lanes.
type Float []float32

// Int is a vector of int32 lanes.
type Int []int32

// Mask selects the active lanes of an instruction.
type Mask []bool

// Unit is a simulated vector unit.
type Unit struct {
	width int
	log   *Logger
	all   Mask
}

// NewUnit returns a unit configured by opts.
func NewUnit(opts ...Option) *Unit {
	cfg := ApplyOptions(opts...)
	u := &Unit{
		width: cfg.Width,
		log:   NewLogger(cfg.Width),
		all:   make(Mask, cfg.Width),
	}
	for i := range u.all {
		u.all[i] = true
	}
	return u
}

// Width returns the lane count.
func (u *Unit) Width() int { return u.width }

// Logger returns the unit's execution log.
func (u *Unit) Logger() *Logger { return u.log }

// Float allocates a zeroed float vector.
func (u *Unit) Float() Float { return make(Float, u.width) }

// Int allocates a zeroed int vector.
func (u *Unit) Int() Int { return make(Int, u.width) }

// Mask allocates a mask with every lane inactive.
func (u *Unit) Mask() Mask { return make(Mask, u.width) }

// AddUserLog appends a marker to the execution log. Markers do not count
// towards the statistics.
func (u *Unit) AddUserLog(name string) {
	u.log.addMarker(name)
}

func (u *Unit) exec(name string, m Mask) {
	u.log.add(name, m)
}

func (u *Unit) checkMask(m Mask) {
	if len(m) != u.width {
		panic(fmt.Sprintf("vecintrin: mask has %d lanes, unit width is %d", len(m), u.width))
	}
}

func (u *Unit) checkLanes(n ...int) {
	for _, l := range n {
		if l != u.width {
			panic(fmt.Sprintf("vecintrin: vector has %d lanes, unit width is %d", l, u.width))
		}
	}
}

func (u *Unit) checkPairs(op string) {
	if u.width%2 != 0 {
		panic(fmt.Sprintf("vecintrin: %s needs an even width, have %d", op, u.width))
	}
}
