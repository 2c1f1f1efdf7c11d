package render

import "os"

// fontProbePaths are where a unicode-capable TTF usually lives. The set is
// best effort; a miss only costs the PDF its non-Latin glyphs.
var fontProbePaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	"C:/Windows/Fonts/arial.ttf",
	"DejaVuSans.ttf",
}

// FindReportFont returns the first probe path that exists, or "" when none
// does; callers must fall back to a built-in font on "".
func FindReportFont() string {
	for _, path := range fontProbePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
