package records

import "time"

type Vec3 struct {
	W, X, Y, Z float32
}

type Point struct {
	Y, W, Z, X float32
}

type Vec2 struct {
	X, Y float32
}

type Vec3d struct {
	W, X, Y, Z float64
}

type Hidden struct {
	W      float32
	secret int
}

type Unit struct{}

type Celsius float64

type Extra struct {
	Value float32
}

type Inner struct {
	Value float32
}

type Vec3Ex struct {
	W, X, Y float32
	Z       Extra
}

type PointEx struct {
	Y, W float32
	Z    Inner
}

type Track struct {
	Name  string
	Stops []Vec3Ex
	Head  *Vec3Ex
}

type Route struct {
	Head  *PointEx
	Name  string
	Stops []PointEx
}

type Node struct {
	Value float32
	Next  *Node
}

type Link struct {
	Value float32
	Next  *Link
}

type Pair struct {
	A float32
	B string
}

type Swapped struct {
	B string
	A float32
}

type Twins struct {
	A, B float32
}

type Sample struct {
	Label string
	Value float64
	Count int
}

type Reading struct {
	Count int
	Label string
	Value float64
}

type Stamped struct {
	At time.Time
}

type Logged struct {
	At time.Time
}

type Embeds struct {
	Extra
	N int
}

type Größe struct {
	Maß float32
}

type Forecast struct {
	Day       string
	High, Low Celsius
}

type Span struct {
	Low, High Celsius
	Day       string
}

type Name struct {
	X float32
}

type Other struct {
	X float32
}

type NameOf struct {
	X float32
}

type Clash struct {
	V int
}

type Clash2 struct {
	V int
}

func ClashToClash2(c Clash) Clash2 {
	return Clash2(c)
}
