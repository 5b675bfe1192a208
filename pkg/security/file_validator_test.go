package security

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestValidateFile(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`)
	pdf := []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")

	tests := []struct {
		name     string
		filename string
		data     []byte
		valid    bool
		mime     string
	}{
		{"png", "icon.png", pngBytes(t), true, "image/png"},
		{"uppercase ext", "ICON.PNG", pngBytes(t), true, "image/png"},
		{"svg", "logo.svg", svg, true, "image/svg+xml"},
		{"pdf", "cv.pdf", pdf, true, "application/pdf"},
		{"no extension", "icon", pngBytes(t), false, ""},
		{"bad extension", "run.exe", pngBytes(t), false, ""},
		{"spoofed jpg", "photo.jpg", pngBytes(t), false, ""},
		{"svg that is not svg", "logo.svg", []byte("hello world, plain text"), false, ""},
		{"too small", "a.png", []byte{0x89}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateFile(tt.filename, tt.data)
			assert.Equal(t, tt.valid, res.Valid, res.Error)
			if tt.valid {
				assert.Equal(t, tt.mime, res.DetectedMIME)
			} else {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestValidateFileExtension(t *testing.T) {
	assert.NoError(t, ValidateFileExtension("a.webp"))
	assert.Error(t, ValidateFileExtension("a.docx"))
	assert.Error(t, ValidateFileExtension("noext"))
}

func TestIsRasterImage(t *testing.T) {
	assert.True(t, IsRasterImage(".JPG"))
	assert.False(t, IsRasterImage(".svg"))
	assert.False(t, IsRasterImage(".pdf"))
}
