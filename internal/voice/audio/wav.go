// Package audio handles the 16-bit mono PCM that speech synthesis returns
// and the WAV container the call-media player expects.
package audio

import (
	"bytes"
	"encoding/binary"
	"time"
)

const (
	headerSize    = 44
	bitsPerSample = 16
	channels      = 1
)

// IsWAV reports whether data starts with a RIFF/WAVE header.
func IsWAV(data []byte) bool {
	return len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE"))
}

// WrapPCM16 prefixes little-endian 16-bit mono samples with a canonical WAV header.
func WrapPCM16(pcm []byte, sampleRate int) []byte {
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	out := make([]byte, headerSize+len(pcm))
	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(pcm)))
	copy(out[8:12], "WAVE")
	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(out[22:24], channels)
	binary.LittleEndian.PutUint32(out[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], bitsPerSample)
	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(pcm)))
	copy(out[headerSize:], pcm)
	return out
}

// EnsureWAV returns data unchanged when it already carries a WAV header and
// wraps it as raw PCM otherwise.
func EnsureWAV(data []byte, sampleRate int) []byte {
	if IsWAV(data) {
		return data
	}
	return WrapPCM16(data, sampleRate)
}

// Duration estimates playback length from the payload size.
func Duration(data []byte, sampleRate int) time.Duration {
	n := len(data)
	if IsWAV(data) && n >= headerSize {
		n -= headerSize
	}
	bytesPerSecond := sampleRate * channels * bitsPerSample / 8
	if bytesPerSecond == 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(bytesPerSecond)
}
