// Package audio converts the PCM returned by the pronunciation endpoint into
// forms a player can consume.
package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrOddLength is returned when PCM16 data has a dangling byte.
var ErrOddLength = errors.New("pcm16 data has odd length")

// Frames decodes interleaved signed 16-bit little-endian PCM into float32
// frames in [-1, 1). The result has one slice per channel.
func Frames(pcm []byte, channels int) ([][]float32, error) {
	if channels < 1 {
		return nil, fmt.Errorf("audio: channels must be positive, got %d", channels)
	}
	if len(pcm)%2 != 0 {
		return nil, ErrOddLength
	}

	samples := len(pcm) / 2
	if samples%channels != 0 {
		return nil, fmt.Errorf("audio: %d samples do not split into %d channels", samples, channels)
	}

	perChannel := samples / channels
	out := make([][]float32, channels)
	for c := range out {
		out[c] = make([]float32, perChannel)
	}
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(pcm[2*i:]))
		out[i%channels][i/channels] = float32(v) / 32768
	}
	return out, nil
}

// Duration returns the play time of pcm in seconds.
func Duration(pcm []byte, sampleRate, channels int) float64 {
	if sampleRate <= 0 || channels <= 0 {
		return 0
	}
	return float64(len(pcm)/2/channels) / float64(sampleRate)
}

// WriteWAV writes pcm as a 16-bit RIFF/WAVE file.
func WriteWAV(w io.Writer, pcm []byte, sampleRate, channels int) error {
	if len(pcm)%2 != 0 {
		return ErrOddLength
	}
	if sampleRate <= 0 || channels <= 0 {
		return fmt.Errorf("audio: invalid format %d Hz, %d channels", sampleRate, channels)
	}

	const bitsPerSample = 16
	blockAlign := channels * bitsPerSample / 8
	header := struct {
		ChunkID       [4]byte
		ChunkSize     uint32
		Format        [4]byte
		FmtID         [4]byte
		FmtSize       uint32
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		DataID        [4]byte
		DataSize      uint32
	}{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     uint32(36 + len(pcm)),
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: bitsPerSample,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      uint32(len(pcm)),
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("audio: write wav header: %w", err)
	}
	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("audio: write wav data: %w", err)
	}
	return nil
}
