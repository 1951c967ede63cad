package audio

import (
	"fmt"
	"math"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"
)

// frameChunk is how many stereo frames are pulled from the graph per read.
const frameChunk = 512

// Output plays a streamer through the system audio device.
type Output struct {
	ctx    *oto.Context
	player oto.Player
	log    zerolog.Logger
}

// Open starts the device and begins pulling from src. It blocks until the
// device is ready.
func Open(src beep.Streamer, log zerolog.Logger) (*Output, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(NewReader(src))
	player.Play()
	log.Info().Int("sampleRate", SampleRate).Msg("audio started")
	return &Output{ctx: ctx, player: player, log: log}, nil
}

// Close stops playback. The oto context stays alive for the process.
func (o *Output) Close() error {
	if o == nil || o.player == nil {
		return nil
	}
	if err := o.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	o.player = nil
	return nil
}

// Reader adapts a beep.Streamer to interleaved float32 LE bytes.
type Reader struct {
	src beep.Streamer
	buf [][2]float64
}

func NewReader(src beep.Streamer) *Reader {
	return &Reader{src: src, buf: make([][2]float64, frameChunk)}
}

func (r *Reader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	if frames > len(r.buf) {
		frames = len(r.buf)
	}
	n, _ := r.src.Stream(r.buf[:frames])
	// A drained source is padded with silence; the device never stops.
	for i := n; i < frames; i++ {
		r.buf[i] = [2]float64{}
	}
	for i := 0; i < frames; i++ {
		putStereoF32LR(p, i, limit(r.buf[i][0]), limit(r.buf[i][1]))
	}
	return frames * 8, nil
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

const kneeStart = 0.9

// limit soft-clips boosted layers back into (-1,1). Samples below the knee
// pass through untouched.
func limit(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	a := math.Abs(x)
	if a <= kneeStart {
		return x
	}
	y := kneeStart + (1-kneeStart)*math.Tanh((a-kneeStart)/(1-kneeStart))
	return math.Copysign(y, x)
}
