package shapes

type Vec3 struct {
	W, X, Y, Z float32
}

type Tagged struct {
	Name   string `yaml:"name"`
	hidden int
	Vec3
}

type Unit struct{}

type Celsius float64

type Names []string

type Alias = Vec3
