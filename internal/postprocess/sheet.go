package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// AlphaBounds returns the smallest rectangle holding every non-transparent
// pixel, or an empty rectangle for a blank image.
func AlphaBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Sheet lays frames out left to right in rows of cols cells. Every cell is
// the size of the largest frame and frames are centered in their cell.
func Sheet(frames []*image.NRGBA, cols, gap int) *image.NRGBA {
	if len(frames) == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	if cols <= 0 || cols > len(frames) {
		cols = len(frames)
	}
	rows := (len(frames) + cols - 1) / cols

	cellW, cellH := 0, 0
	for _, f := range frames {
		fb := f.Bounds()
		cellW = max(cellW, fb.Dx())
		cellH = max(cellH, fb.Dy())
	}

	sheet := image.NewNRGBA(image.Rect(0, 0,
		cols*cellW+(cols-1)*gap,
		rows*cellH+(rows-1)*gap))

	for i, f := range frames {
		fb := f.Bounds()
		x := (i%cols)*(cellW+gap) + (cellW-fb.Dx())/2
		y := (i/cols)*(cellH+gap) + (cellH-fb.Dy())/2
		draw.Copy(sheet, image.Pt(x, y), f, fb, draw.Over, nil)
	}
	return sheet
}
