// Package audio decodes Sun/NeXT audio (.au) files, the classic Java Sound
// clip format, into the 16-bit stereo PCM stream Ebitengine plays.
package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// AU file header structure (24 bytes minimum)
type auHeader struct {
	Magic      uint32 // 0x2e736e64 (".snd")
	DataOffset uint32 // Offset to audio data (typically 24)
	DataSize   uint32 // Size of audio data in bytes (0xFFFFFFFF if unknown)
	Encoding   uint32 // Audio encoding format
	SampleRate uint32 // Sample rate in Hz
	Channels   uint32 // Number of interleaved channels
}

const (
	auMagic         = 0x2e736e64 // ".snd" in big-endian
	auHeaderSize    = 24
	auUnknownSize   = 0xffffffff
	auEncodingULaw  = 1 // 8-bit μ-law
	auEncodingPCM16 = 3 // 16-bit big-endian linear PCM

	bytesPerFrame = 4 // 16-bit stereo output
)

// frame is one stereo output sample.
type frame [2]int16

// Stream is decoded 16-bit little-endian stereo PCM.
// It satisfies the io.ReadSeeker + Length shape used by audio.NewInfiniteLoop.
type Stream struct {
	*bytes.Reader
	sampleRate int
}

// Length returns the stream size in bytes.
func (s *Stream) Length() int64 {
	return s.Size()
}

// SampleRate returns the output sample rate in Hz.
func (s *Stream) SampleRate() int {
	return s.sampleRate
}

// DecodeAU decodes an .au file and resamples it to sampleRate.
//
// Supported encodings: 8-bit μ-law and 16-bit linear PCM, mono or stereo.
// Mono input is duplicated to both channels.
func DecodeAU(r io.Reader, sampleRate int) (*Stream, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid target sample rate: %d", sampleRate)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read AU file: %w", err)
	}
	if len(data) < auHeaderSize {
		return nil, fmt.Errorf("AU file too short: %d bytes (minimum %d)", len(data), auHeaderSize)
	}

	var header auHeader
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read AU header: %w", err)
	}
	if header.Magic != auMagic {
		return nil, fmt.Errorf("invalid AU magic number: 0x%08x (expected 0x%08x)", header.Magic, auMagic)
	}
	if header.Channels < 1 || header.Channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (only 1-2 supported)", header.Channels)
	}
	if header.SampleRate == 0 {
		return nil, fmt.Errorf("invalid AU sample rate: 0")
	}

	offset := int(header.DataOffset)
	if offset < auHeaderSize || offset > len(data) {
		return nil, fmt.Errorf("invalid data offset: %d (file size: %d)", offset, len(data))
	}
	payload := data[offset:]
	if header.DataSize != auUnknownSize && int(header.DataSize) < len(payload) {
		payload = payload[:header.DataSize]
	}

	frames, err := decodeFrames(payload, header.Encoding, int(header.Channels))
	if err != nil {
		return nil, err
	}

	frames = resample(frames, int(header.SampleRate), sampleRate)

	out := make([]byte, len(frames)*bytesPerFrame)
	for i, f := range frames {
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(f[0]))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(f[1]))
	}

	return &Stream{Reader: bytes.NewReader(out), sampleRate: sampleRate}, nil
}

// decodeFrames converts the payload into stereo frames
func decodeFrames(payload []byte, encoding uint32, channels int) ([]frame, error) {
	var samples []int16
	switch encoding {
	case auEncodingULaw:
		samples = make([]int16, len(payload))
		for i, b := range payload {
			samples[i] = mulawTable[b]
		}
	case auEncodingPCM16:
		samples = make([]int16, len(payload)/2)
		for i := range samples {
			samples[i] = int16(binary.BigEndian.Uint16(payload[i*2:]))
		}
	default:
		return nil, fmt.Errorf("unsupported AU encoding: %d (supported: μ-law [1], 16-bit PCM [3])", encoding)
	}

	frames := make([]frame, len(samples)/channels)
	for i := range frames {
		left := samples[i*channels]
		right := left
		if channels == 2 {
			right = samples[i*channels+1]
		}
		frames[i] = frame{left, right}
	}
	return frames, nil
}

// resample converts between sample rates with linear interpolation
func resample(frames []frame, from, to int) []frame {
	if from == to || len(frames) == 0 {
		return frames
	}

	n := int(int64(len(frames)) * int64(to) / int64(from))
	out := make([]frame, n)
	last := len(frames) - 1
	for i := range out {
		pos := float64(i) * float64(from) / float64(to)
		j := int(pos)
		if j >= last {
			out[i] = frames[last]
			continue
		}
		t := pos - float64(j)
		for c := 0; c < 2; c++ {
			a, b := float64(frames[j][c]), float64(frames[j+1][c])
			out[i][c] = int16(a + (b-a)*t)
		}
	}
	return out
}
