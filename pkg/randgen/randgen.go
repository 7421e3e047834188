// Package randgen provides bounded normal and uniform sample
// generators for building synthetic evaluation datasets.
package randgen

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces n samples at a time.
type Generator interface {
	RandN(n int) []float64
}

// Uniform draws samples uniformly from [Low, High).
type Uniform struct {
	Low  float64
	High float64
	src  *rand.Rand
}

func NewUniform(low, high float64, seed uint64) *Uniform {
	return &Uniform{Low: low, High: high, src: rand.New(rand.NewPCG(seed, seed))}
}

func (u *Uniform) Rand() float64 {
	return u.src.Float64()*(u.High-u.Low) + u.Low
}

func (u *Uniform) RandN(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = u.Rand()
	}
	return r
}

// Normal draws from a normal distribution truncated by rejection to
// [Min, Max].
type Normal struct {
	dist distuv.Normal
	min  float64
	max  float64
}

func NewNormal(mean, stddev, min, max float64, seed uint64) *Normal {
	if min >= max {
		panic("randgen: min must be less than max")
	}
	return &Normal{
		dist: distuv.Normal{
			Mu:    mean,
			Sigma: stddev,
			Src:   rand.NewPCG(seed, seed),
		},
		min: min,
		max: max,
	}
}

func (g *Normal) Rand() float64 {
	for {
		v := g.dist.Rand()
		if v >= g.min && v <= g.max {
			return v
		}
	}
}

func (g *Normal) RandN(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = g.Rand()
	}
	return r
}

func (g *Normal) Min() float64 { return g.min }
func (g *Normal) Max() float64 { return g.max }

// BoxMuller draws normal samples without distuv, clamped to
// [Low, High].
type BoxMuller struct {
	Mean   float64
	StdDev float64
	Low    float64
	High   float64
	src    *rand.Rand
}

func NewBoxMuller(mean, stddev, low, high float64, seed uint64) *BoxMuller {
	return &BoxMuller{Mean: mean, StdDev: stddev, Low: low, High: high,
		src: rand.New(rand.NewPCG(seed, seed))}
}

func (p *BoxMuller) Rand() float64 {
	u1 := p.src.Float64()
	u2 := p.src.Float64()
	z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	v := z*p.StdDev + p.Mean

	if v < p.Low {
		return p.Low
	}
	if v > p.High {
		return p.High
	}
	return v
}

func (p *BoxMuller) RandN(n int) []float64 {
	r := make([]float64, n)
	for i := range r {
		r[i] = p.Rand()
	}
	return r
}
