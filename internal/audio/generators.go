package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// surf is an endless ocean bed: lowpassed noise under a slow swell, with
// the two channels drifting apart for width.
type surf struct {
	sr     beep.SampleRate
	seed   uint64
	pos    int
	lpL    float64
	lpR    float64
	hissLP float64
}

func newSurf(sr beep.SampleRate, seed uint64) *surf {
	return &surf{sr: sr, seed: seed | 1}
}

func (s *surf) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(s.pos) / float64(s.sr)
		// Two overlapping swells, roughly 7s and 11s apart.
		swell := 0.55 + 0.3*math.Sin(2*math.Pi*t/7.3) + 0.15*math.Sin(2*math.Pi*t/11.1+1.3)

		s.lpL = s.lpL*0.985 + lcg(&s.seed)*0.015
		s.lpR = s.lpR*0.985 + lcg(&s.seed)*0.015
		s.hissLP = s.hissLP*0.7 + lcg(&s.seed)*0.3
		hiss := s.hissLP * 0.04 * swell * swell

		samples[i][0] = (s.lpL*3.2 + hiss) * swell * 0.25
		samples[i][1] = (s.lpR*3.2 + hiss) * swell * 0.25
		s.pos++
	}
	return len(samples), true
}

func (s *surf) Err() error { return nil }

// crackle is radio static: white noise with sparse pops.
type crackle struct {
	seed uint64
	hp   float64
	prev float64
}

func newCrackle(seed uint64) *crackle {
	return &crackle{seed: seed | 1}
}

func (c *crackle) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		n := lcg(&c.seed)
		// One-pole highpass keeps it thin.
		c.hp = 0.9 * (c.hp + n - c.prev)
		c.prev = n
		v := c.hp * 0.35
		if lcg(&c.seed) > 0.9995 {
			v += lcg(&c.seed) * 0.8
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (c *crackle) Err() error { return nil }

// hum is a mains-style buzz with odd harmonics and a slow wobble.
type hum struct {
	sr    beep.SampleRate
	freq  float64
	phase float64
	pos   int
}

func newHum(sr beep.SampleRate, freq float64) *hum {
	return &hum{sr: sr, freq: freq}
}

func (h *hum) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(h.pos) / float64(h.sr)
		wobble := 1 + 0.01*math.Sin(2*math.Pi*0.7*t)
		h.phase += h.freq * wobble / float64(h.sr)
		h.phase -= math.Floor(h.phase)

		p := 2 * math.Pi * h.phase
		v := 0.3*math.Sin(p) + 0.15*math.Sin(3*p) + 0.08*math.Sin(5*p) + 0.04*math.Sin(7*p)
		v *= 0.6

		samples[i][0] = v
		samples[i][1] = v
		h.pos++
	}
	return len(samples), true
}

func (h *hum) Err() error { return nil }
