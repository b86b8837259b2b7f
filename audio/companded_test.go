// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/ik5/g711"
	"github.com/ik5/g711/utils"
)

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestCompandedSource_Expands(t *testing.T) {
	t.Parallel()

	codes := []byte{0xFF, 0x7F, 0x80, 0x00, 0xCE, 0x73}
	src := NewCompandedSource[g711.ULaw](bytes.NewReader(codes), 8000, 1)

	got := readAll(t, src, 4)
	if len(got) != len(codes) {
		t.Fatalf("got %d samples, want %d", len(got), len(codes))
	}

	for i, code := range codes {
		if want := utils.Int16ToFloat32(g711.ExpandULaw(code)); got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestCompandedSource_WholeFrames(t *testing.T) {
	t.Parallel()

	codes := bytes.Repeat([]byte{0xD5, 0x55}, 10)
	src := NewCompandedSource[g711.ALaw](iotest.OneByteReader(bytes.NewReader(codes)), 8000, 2)
	buf := make([]float32, 6)

	total := 0
	for {
		n, err := src.ReadSamples(buf)
		if n%2 != 0 {
			t.Fatalf("ReadSamples() = %d, not a whole number of frames", n)
		}

		for f := 0; f < n; f += 2 {
			if buf[f] != utils.Int16ToFloat32(8) || buf[f+1] != utils.Int16ToFloat32(-8) {
				t.Fatalf("frame = %v %v, channels swapped", buf[f], buf[f+1])
			}
		}

		total += n

		if err == io.EOF {
			break
		}

		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	if total != len(codes) {
		t.Errorf("read %d samples, want %d", total, len(codes))
	}
}

func TestCompandedSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	src := NewCompandedSource[g711.ALaw](bytes.NewReader([]byte{0xD5, 0x55, 0xD5}), 8000, 2)

	if got := readAll(t, src, 8); len(got) != 2 {
		t.Errorf("got %d samples, want 2", len(got))
	}
}

func TestCompandedSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := NewCompandedSource[g711.ULaw](bytes.NewReader(nil), 8000, 2)

	if _, err := src.ReadSamples(make([]float32, 5)); !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want %v", err, ErrInvalidDstSize)
	}
}

func TestCompandedSource_Close(t *testing.T) {
	t.Parallel()

	in := &closeTracker{Reader: bytes.NewReader(nil)}
	src := NewCompandedSource[g711.ULaw](in, 8000, 1)

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if !in.closed {
		t.Error("Close() did not close the reader")
	}

	plain := NewCompandedSource[g711.ULaw](bytes.NewReader(nil), 8000, 1)
	if err := plain.Close(); err != nil {
		t.Errorf("Close() on plain reader error = %v", err)
	}
}

func TestCompandedSource_ReaderError(t *testing.T) {
	t.Parallel()

	src := NewCompandedSource[g711.ULaw](iotest.ErrReader(iotest.ErrTimeout), 8000, 1)

	if _, err := src.ReadSamples(make([]float32, 4)); err != iotest.ErrTimeout {
		t.Errorf("ReadSamples() error = %v, want %v", err, iotest.ErrTimeout)
	}
}

// stallReader hands out data once, then reports (0, nil) forever.
type stallReader struct {
	data []byte
}

func (s *stallReader) Read(p []byte) (int, error) {
	n := copy(p, s.data)
	s.data = s.data[n:]

	return n, nil
}

func TestCompandedSource_StalledPartialFrame(t *testing.T) {
	t.Parallel()

	src := NewCompandedSource[g711.ALaw](&stallReader{data: []byte{0xD5}}, 8000, 2)

	n, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrNoProgress)
	}

	if n != 0 {
		t.Errorf("ReadSamples() = %d samples, want 0", n)
	}
}
