/*
Package codec decodes still images and animations into the in-memory
frame representation used by the unscale package, and encodes reduced
frames back out.

Supported input containers are PNG, GIF (including animations), WebP
(still frames only) and JPEG. Animated GIF frames are coalesced during
decoding; the decoder replays each frame's disposal onto a shared canvas
so that every frame handed to the detector has the full canvas
dimensions. Output is written as PNG, GIF or JPEG; GIF output carries the
original delays and loop count, with each frame quantized down to a
256-color palette when necessary.
*/
package codec

import (
	"errors"
	"strings"
)

// Format is a container format name as registered with the standard
// image package ("png", "gif", "webp", "jpeg").
type Format string

const (
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatWebP Format = "webp"
	FormatJPEG Format = "jpeg"
)

var (
	ErrUnknownFormat     = errors.New("codec: unrecognized image format")
	ErrUnsupportedEncode = errors.New("codec: format cannot be encoded")
)

var formatExtensions = map[Format]string{
	FormatPNG:  ".png",
	FormatGIF:  ".gif",
	FormatWebP: ".webp",
	FormatJPEG: ".jpg",
}

var extensionFormats = map[string]Format{
	".png":  FormatPNG,
	".gif":  FormatGIF,
	".webp": FormatWebP,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
}

// Extension returns the conventional file extension for the format,
// including the leading dot.
func (f Format) Extension() string {
	if ext, ok := formatExtensions[f]; ok {
		return ext
	}
	return "." + string(f)
}

// FormatForExtension maps a file extension (with leading dot, any case)
// to its format.
func FormatForExtension(ext string) (Format, bool) {
	f, ok := extensionFormats[strings.ToLower(ext)]
	return f, ok
}

// CanEncode reports whether Encode supports the format. WebP has no
// encoder in the corpus of libraries used here.
func CanEncode(f Format) bool {
	switch f {
	case FormatPNG, FormatGIF, FormatJPEG:
		return true
	}
	return false
}
