package encoder

import (
	"image"
	"path/filepath"
	"strconv"
)

// FrameWriter saves an ordered sequence of frames as dir/name/0.<ext>, dir/name/1.<ext>, ...
type FrameWriter struct {
	encoder *Encoder
	dir     string
	count   int
}

// NewFrameWriter creates a writer that stores frames of the run called name under dir.
func NewFrameWriter(e *Encoder, dir, name string) *FrameWriter {
	return &FrameWriter{
		encoder: e,
		dir:     filepath.Join(dir, name),
	}
}

// WriteFrame saves img as the next frame.
func (fw *FrameWriter) WriteFrame(img image.Image) error {
	if _, err := fw.encoder.Save(fw.dir, strconv.Itoa(fw.count), img); err != nil {
		return err
	}
	fw.count++
	return nil
}

// Count returns the number of frames written.
func (fw *FrameWriter) Count() int {
	return fw.count
}

// Dir returns the directory the frames are written to.
func (fw *FrameWriter) Dir() string {
	return fw.dir
}
