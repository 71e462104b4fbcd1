package mime

import (
	"path/filepath"
	"strings"
)

var Extension = map[string]MIME{
	".css":  CSS,
	".gif":  GIF,
	".htm":  HTML,
	".html": HTML,
	".ico":  ICO,
	".jpeg": JPEG,
	".jpg":  JPEG,
	".js":   JS,
	".mjs":  JS,
	".json": JSON,
	".pdf":  PDF,
	".png":  PNG,
	".svg":  SVG,
	".txt":  Plain,
	".wasm": WASM,
	".webp": WEBP,
	".xml":  XML,
	".zip":  ZIP,
}

// Guess returns the MIME of a file judging by its extension, falling back to
// OctetStream.
func Guess(filename string) MIME {
	if mime, found := Extension[strings.ToLower(filepath.Ext(filename))]; found {
		return mime
	}

	return OctetStream
}
