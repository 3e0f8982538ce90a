package export

import (
	"bufio"
	"compress/lzw"
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"io"
)

var (
	ErrNoFrames   = errors.New("no frames captured")
	ErrFrameSize  = errors.New("frame size differs from the first frame")
	ErrEncoderEnd = errors.New("gif encoder already closed")
)

// GIFEncoder streams a looping animation to w one frame at a time, so
// only the frame being encoded is held in memory. Every frame is
// quantised to the Plan 9 palette, written once as the global table.
type GIFEncoder struct {
	w      *bufio.Writer
	delay  int
	frame  *image.Paletted
	frames int
	closed bool
	err    error
}

// NewGIFEncoder encodes frames shown at fps. GIF delays are in
// hundredths of a second and most viewers clamp anything under 2.
func NewGIFEncoder(w io.Writer, fps int) *GIFEncoder {
	delay := 2
	if fps > 0 {
		delay = max(100/fps, 2)
	}
	return &GIFEncoder{w: bufio.NewWriter(w), delay: delay}
}

func (e *GIFEncoder) Len() int { return e.frames }

// Delay is the per-frame delay in hundredths of a second.
func (e *GIFEncoder) Delay() int { return e.delay }

// Add quantises img and appends it to the stream. All frames must match
// the size of the first.
func (e *GIFEncoder) Add(img image.Image) error {
	if e.closed {
		return ErrEncoderEnd
	}
	if e.err != nil {
		return e.err
	}

	b := img.Bounds()
	if e.frame == nil {
		e.frame = image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
		e.writeHeader(b.Dx(), b.Dy())
	} else if b.Dx() != e.frame.Rect.Dx() || b.Dy() != e.frame.Rect.Dy() {
		return ErrFrameSize
	}

	draw.Draw(e.frame, e.frame.Rect, img, b.Min, draw.Src)
	e.writeFrame()
	if e.err == nil {
		e.frames++
	}
	return e.err
}

// Close writes the trailer and flushes. It does not close the underlying
// writer.
func (e *GIFEncoder) Close() error {
	if e.closed {
		return ErrEncoderEnd
	}
	e.closed = true
	if e.err != nil {
		return e.err
	}
	if e.frames == 0 {
		return ErrNoFrames
	}
	e.write(0x3b)
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

func (e *GIFEncoder) write(p ...byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *GIFEncoder) writeHeader(w, h int) {
	e.write([]byte("GIF89a")...)
	// logical screen: global table of 2^(7+1) entries, background 0
	e.write(byte(w), byte(w>>8), byte(h), byte(h>>8), 0xf7, 0x00, 0x00)
	for _, c := range palette.Plan9 {
		rgba := color.RGBAModel.Convert(c).(color.RGBA)
		e.write(rgba.R, rgba.G, rgba.B)
	}
	// NETSCAPE2.0 application extension, loop forever
	e.write(0x21, 0xff, 0x0b)
	e.write([]byte("NETSCAPE2.0")...)
	e.write(0x03, 0x01, 0x00, 0x00, 0x00)
}

func (e *GIFEncoder) writeFrame() {
	r := e.frame.Rect
	// graphic control: no disposal, no transparency
	e.write(0x21, 0xf9, 0x04, 0x00, byte(e.delay), byte(e.delay>>8), 0x00, 0x00)
	// image descriptor at the origin, no local table
	e.write(0x2c, 0x00, 0x00, 0x00, 0x00,
		byte(r.Dx()), byte(r.Dx()>>8), byte(r.Dy()), byte(r.Dy()>>8), 0x00)

	const litWidth = 8
	e.write(litWidth)
	if e.err != nil {
		return
	}
	bw := &blockWriter{w: e.w}
	lw := lzw.NewWriter(bw, lzw.LSB, litWidth)
	if _, err := lw.Write(e.frame.Pix); err != nil {
		e.err = err
		return
	}
	if err := lw.Close(); err != nil {
		e.err = err
		return
	}
	e.err = bw.close()
}

// blockWriter splits LZW output into GIF data sub-blocks of up to 255
// bytes and ends them with a zero-length block.
type blockWriter struct {
	w   io.Writer
	buf [256]byte
	n   int
	err error
}

func (b *blockWriter) Write(p []byte) (int, error) {
	for _, c := range p {
		if err := b.WriteByte(c); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (b *blockWriter) WriteByte(c byte) error {
	if b.err != nil {
		return b.err
	}
	b.n++
	b.buf[b.n] = c
	if b.n == 255 {
		b.flush()
	}
	return b.err
}

func (b *blockWriter) flush() {
	if b.n == 0 || b.err != nil {
		return
	}
	b.buf[0] = byte(b.n)
	_, b.err = b.w.Write(b.buf[:b.n+1])
	b.n = 0
}

func (b *blockWriter) close() error {
	b.flush()
	if b.err != nil {
		return b.err
	}
	_, err := b.w.Write([]byte{0x00})
	return err
}
