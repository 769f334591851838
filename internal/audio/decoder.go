package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"

	"github.com/olivier-w/goo/internal/media"
)

// DecodeFile decodes up to two seconds of a sample file into cue PCM.
func DecodeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c *clip
	switch format := media.FormatOf(path); format {
	case media.MP3:
		c, err = decodeMP3(f)
	case media.WAV:
		c, err = decodeWAV(f)
	case media.FLAC:
		c, err = decodeFLAC(f)
	case media.OGG:
		c, err = decodeOGG(f)
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: %s)", path, media.SupportedExtsList())
	}
	if err != nil {
		return nil, err
	}
	pcm := c.toPCM()
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio in %s", path)
	}
	return pcm, nil
}

// --- MP3 decoder ---

func decodeMP3(r io.Reader) (*clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decoding MP3: %w", err)
	}
	// go-mp3 always yields 16-bit stereo.
	c := &clip{rate: dec.SampleRate(), channels: 2}
	buf := make([]byte, 4096)
	for !c.full() {
		n, err := dec.Read(buf)
		for i := 0; i+1 < n; i += 2 {
			c.samples = append(c.samples, float32(int16(binary.LittleEndian.Uint16(buf[i:])))/32768)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding MP3: %w", err)
		}
	}
	return c, nil
}

// --- WAV decoder ---

func decodeWAV(r io.ReadSeeker) (*clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	bits := buf.SourceBitDepth
	if bits <= 0 {
		bits = int(dec.BitDepth)
	}
	if bits <= 0 || bits > 32 {
		return nil, fmt.Errorf("unsupported WAV bit depth %d", bits)
	}
	scale := float32(int64(1) << (bits - 1))
	c := &clip{rate: buf.Format.SampleRate, channels: buf.Format.NumChannels}
	limit := int(maxClip*float64(c.rate)) * max(c.channels, 1)
	for i, v := range buf.Data {
		if i >= limit {
			break
		}
		if bits == 8 {
			// 8-bit WAV is unsigned
			v -= 128
		}
		c.samples = append(c.samples, float32(v)/scale)
	}
	return c, nil
}

// --- FLAC decoder ---

func decodeFLAC(r io.Reader) (*clip, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("decoding FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	scale := float32(int64(1) << (info.BitsPerSample - 1))
	c := &clip{rate: int(info.SampleRate), channels: channels}
	for !c.full() {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding FLAC: %w", err)
		}
		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				c.samples = append(c.samples, float32(frame.Subframes[ch].Samples[i])/scale)
			}
		}
	}
	return c, nil
}

// --- OGG Vorbis decoder ---

func decodeOGG(r io.Reader) (*clip, error) {
	reader, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("decoding OGG: %w", err)
	}
	c := &clip{rate: reader.SampleRate(), channels: reader.Channels()}
	buf := make([]float32, 4096)
	for !c.full() {
		n, err := reader.Read(buf)
		c.samples = append(c.samples, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding OGG: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return c, nil
}
