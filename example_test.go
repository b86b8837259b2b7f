// SPDX-License-Identifier: EPL-2.0

package g711_test

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/g711"
)

// Example_scalar shows the per-sample conversions.
func Example_scalar() {
	code := g711.CompressULaw(1000)
	fmt.Printf("u-law %#02x -> %d\n", code, g711.ExpandULaw(code))

	code = g711.CompressALaw(1000)
	fmt.Printf("A-law %#02x -> %d\n", code, g711.ExpandALaw(code))
	// Output:
	// u-law 0xce -> 988
	// A-law 0xfa -> 1008
}

// Example_frame compresses one 20 ms telephony frame into a reused buffer.
func Example_frame() {
	pcm := make([]int16, 160)
	for i := range pcm {
		pcm[i] = int16(i * 100)
	}

	var frame [160]byte
	n := g711.CompressBuf[g711.ALaw](pcm, frame[:])

	fmt.Println(n, len(frame))
	// Output: 160 160
}

func ExampleCompress() {
	log := g711.Compress[g711.ALaw]([]int16{-0x5EE4, 0x48A7, 0x1430, 0x0036})
	fmt.Printf("% x\n", log)

	linear := g711.Expand[g711.ALaw](log)
	fmt.Println(linear)
	// Output:
	// 22 a7 81 d6
	// [-24064 18944 5248 56]
}

func ExampleAppendCompressed() {
	packet := []byte{0x80, 0x00} // caller-owned header
	packet = g711.AppendCompressed[g711.ULaw](packet, []int16{0, -32768, 32767})

	fmt.Printf("% x\n", packet)
	// Output: 80 00 ff 00 80
}

func ExampleNewWriter() {
	var wire bytes.Buffer

	w := g711.NewWriter[g711.ULaw](&wire)
	_, _ = w.WriteSamples([]int16{100, -100})

	r := g711.NewReader[g711.ULaw](&wire)
	dst := make([]int16, 4)
	n, _ := r.ReadSamples(dst)

	fmt.Println(dst[:n])
	// Output: [104 -96]
}

func ExampleReadAllCompressed() {
	linear, err := g711.ReadAllCompressed[g711.ALaw](bytes.NewReader([]byte{0xD5, 0x55}))
	if err != nil && err != io.EOF {
		fmt.Println(err)
		return
	}

	fmt.Println(linear)
	// Output: [8 -8]
}

func ExampleULaw_String() {
	fmt.Println(g711.ULaw{}, g711.ALaw{})
	// Output: u-law A-law
}
