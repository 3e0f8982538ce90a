// Package export writes rendered shows to image files.
package export

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	FormatGIF Format = "gif"
	FormatSVG Format = "svg"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatGIF, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Sink writes captured frames to a file. GIF streams every frame; SVG
// keeps only the last one and writes it on Close.
type Sink struct {
	f      *os.File
	path   string
	format Format
	gif    *GIFEncoder
	last   image.Image
	frames int
}

// Create opens path for a show recorded at fps.
func Create(path string, format Format, fps int) (*Sink, error) {
	if format != FormatGIF && format != FormatSVG {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	s := &Sink{f: f, path: path, format: format}
	if format == FormatGIF {
		s.gif = NewGIFEncoder(f, fps)
	}
	return s, nil
}

func (s *Sink) Capture(img image.Image) error {
	s.frames++
	if s.gif != nil {
		if err := s.gif.Add(img); err != nil {
			return fmt.Errorf("encode gif: %w", err)
		}
		return nil
	}
	s.last = img
	return nil
}

// Frames is the number of frames captured so far.
func (s *Sink) Frames() int { return s.frames }

// Close finishes the file. A sink that captured nothing removes its file
// and returns ErrNoFrames.
func (s *Sink) Close() error {
	var err error
	switch {
	case s.frames == 0:
		err = ErrNoFrames
	case s.gif != nil:
		err = s.gif.Close()
	default:
		_, err = s.f.WriteString(FrameToSVG(s.last))
	}

	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, ErrNoFrames) {
		os.Remove(s.path)
		return err
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Discard closes the sink and removes its file without finishing it.
func (s *Sink) Discard() {
	s.f.Close()
	os.Remove(s.path)
}
