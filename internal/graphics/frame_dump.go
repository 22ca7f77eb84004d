package graphics

import (
	"fmt"
	"os"
)

// saveFrameAsPPM writes frameBuffer out as a plain ASCII PPM (P3)
// image, one line per scanline, so it can be inspected without any
// image tooling beyond a text editor.
func (w *HeadlessWindow) saveFrameAsPPM(frameBuffer *[256 * 240 * 3]uint8, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %v", filename, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "P3\n256 240\n255\n")
	for y := 0; y < 240; y++ {
		for x := 0; x < 256; x++ {
			i := (y*256 + x) * 3
			fmt.Fprintf(file, "%d %d %d ", frameBuffer[i], frameBuffer[i+1], frameBuffer[i+2])
		}
		fmt.Fprintf(file, "\n")
	}
	return nil
}
