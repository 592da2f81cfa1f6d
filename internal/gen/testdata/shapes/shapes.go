package shapes

import "time"

type Vec2 struct {
	X, Y float32
}

type Pt2 struct {
	Y, X float32
}

type Stamp struct {
	At  time.Time
	Tag string
}

type Mark struct {
	Tag string
	At  time.Time
}

type Pair struct {
	A float64
	B int
}

type Swap struct {
	B int
	A float64
}

type Leaf struct {
	V     int
	Extra string
}

type Leaf2 struct {
	V int
}

type Tree struct {
	Leaves []Leaf
	Root   *Leaf
}

type Tree2 struct {
	Root   *Leaf2
	Leaves []Leaf2
}

type Name struct {
	X float32
}

type Other struct {
	X float32
}
