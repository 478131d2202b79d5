package render

import (
	"fmt"
	"strings"
)

// HalfBlockRows converts the framebuffer into terminal rows of upper
// half-block characters, two pixel rows per terminal row: the top pixel
// becomes the foreground, the bottom the background, in 24-bit color.
// Color sequences are only emitted when they change along the row, and
// each row ends with a reset.
func (fb *Framebuffer) HalfBlockRows() []string {
	rows := make([]string, 0, (fb.Height+1)/2)
	var sb strings.Builder
	for y := 0; y < fb.Height; y += 2 {
		sb.Reset()
		var prevTop, prevBot [3]uint8
		first := true
		for x := 0; x < fb.Width; x++ {
			tp := fb.img.RGBAAt(x, y)
			top := [3]uint8{tp.R, tp.G, tp.B}
			bot := [3]uint8{fb.BG.R, fb.BG.G, fb.BG.B}
			if y+1 < fb.Height {
				bp := fb.img.RGBAAt(x, y+1)
				bot = [3]uint8{bp.R, bp.G, bp.B}
			}
			if first || top != prevTop {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm", top[0], top[1], top[2])
			}
			if first || bot != prevBot {
				fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm", bot[0], bot[1], bot[2])
			}
			sb.WriteString("▀")
			prevTop, prevBot = top, bot
			first = false
		}
		sb.WriteString("\x1b[0m")
		rows = append(rows, sb.String())
	}
	return rows
}
