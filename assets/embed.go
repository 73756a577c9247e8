package assets

import (
	"embed"
	"io"
)

// Default dictionaries used when no word files are configured.
// standard.txt backs easy/medium/hard, kids.txt backs the kids tier.
//
//go:embed standard.txt kids.txt
var FS embed.FS

func StandardList() (io.ReadCloser, error) {
	return FS.Open("standard.txt")
}

func KidsList() (io.ReadCloser, error) {
	return FS.Open("kids.txt")
}
