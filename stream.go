// SPDX-License-Identifier: EPL-2.0

package g711

import "io"

// WriteCompressed compresses linear with L and writes the codes to w in a
// single Write call. It returns the number of bytes written, which is also
// the number of samples consumed. Errors from w are returned unchanged.
func WriteCompressed[L Law](w io.Writer, linear []int16) (int, error) {
	return w.Write(Compress[L](linear))
}

// ReadCompressed reads up to len(linear) codes from r with a single Read
// call and expands the bytes that were read into linear. Like io.Reader it
// may return n > 0 together with a non-nil error.
func ReadCompressed[L Law](r io.Reader, linear []int16) (int, error) {
	log := make([]byte, len(linear))
	n, err := r.Read(log)
	ExpandBuf[L](log[:n], linear)

	return n, err
}

// ReadFullCompressed reads exactly len(linear) codes from r and expands them
// into linear. It follows io.ReadFull: a short stream yields
// io.ErrUnexpectedEOF, and whatever prefix was read is still expanded.
func ReadFullCompressed[L Law](r io.Reader, linear []int16) (int, error) {
	log := make([]byte, len(linear))
	n, err := io.ReadFull(r, log)
	ExpandBuf[L](log[:n], linear)

	return n, err
}

// ReadAllCompressed reads r until EOF and returns the expanded samples.
// A nil error means the stream ended normally.
func ReadAllCompressed[L Law](r io.Reader) ([]int16, error) {
	log, err := io.ReadAll(r)

	return Expand[L](log), err
}

// Writer compresses linear samples onto an underlying byte stream.
// Its scratch buffer is reused between calls; a Writer is not safe for
// concurrent use.
type Writer[L Law] struct {
	w   io.Writer
	buf []byte
}

// NewWriter returns a Writer that compresses with L onto w.
func NewWriter[L Law](w io.Writer) *Writer[L] {
	return &Writer[L]{w: w}
}

// WriteSamples compresses linear and writes it to the underlying writer.
func (w *Writer[L]) WriteSamples(linear []int16) (int, error) {
	w.buf = AppendCompressed[L](w.buf[:0], linear)

	return w.w.Write(w.buf)
}

// Reader expands codes read from an underlying byte stream.
// Like Writer it keeps one scratch buffer and is not safe for concurrent use.
type Reader[L Law] struct {
	r   io.Reader
	buf []byte
}

// NewReader returns a Reader that expands L codes read from r.
func NewReader[L Law](r io.Reader) *Reader[L] {
	return &Reader[L]{r: r}
}

// ReadSamples reads up to len(dst) codes and expands them into dst.
func (r *Reader[L]) ReadSamples(dst []int16) (int, error) {
	if cap(r.buf) < len(dst) {
		r.buf = make([]byte, len(dst))
	}

	n, err := r.r.Read(r.buf[:len(dst)])
	ExpandBuf[L](r.buf[:n], dst)

	return n, err
}
