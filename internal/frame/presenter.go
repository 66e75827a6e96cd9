package frame

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Presenter shows a finished frame.
type Presenter interface {
	Present(b *Buffer) error
}

// Discard drops every frame. It is used when only logs are wanted.
type Discard struct{}

func (Discard) Present(*Buffer) error { return nil }

// TextPresenter draws frames as text, two pixel rows per line using
// half-block characters.
type TextPresenter struct {
	w io.Writer
	// Home moves the cursor to the top-left corner before each frame so
	// successive frames overwrite each other in a terminal.
	Home bool
}

// NewTextPresenter writes frames to w.
func NewTextPresenter(w io.Writer, home bool) *TextPresenter {
	return &TextPresenter{w: w, Home: home}
}

var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

func (p *TextPresenter) Present(b *Buffer) error {
	bw := bufio.NewWriter(p.w)
	if p.Home {
		bw.WriteString("\x1b[H")
	}
	for y := 0; y < b.Height(); y += 2 {
		for x := 0; x < b.Width(); x++ {
			idx := 0
			if b.Lit(x, y) {
				idx |= 1
			}
			if b.Lit(x, y+1) {
				idx |= 2
			}
			bw.WriteRune(halfBlocks[idx])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PNGPresenter overwrites a PNG file with every frame.
type PNGPresenter struct {
	Path string
}

func (p *PNGPresenter) Present(b *Buffer) error {
	// Write next to the target and rename, so readers never see half a file.
	tmp, err := os.CreateTemp(filepath.Dir(p.Path), ".frame-*.png")
	if err != nil {
		return fmt.Errorf("failed to create frame file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, b.Image()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode frame: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	if err := os.Rename(tmp.Name(), p.Path); err != nil {
		return fmt.Errorf("failed to publish frame: %w", err)
	}
	return nil
}
