package editor

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// FileKind restricts what a file input accepts.
type FileKind int

const (
	AnyFile FileKind = iota
	SVGFile
	ImageFile
)

var errNoUploader = errors.New("no uploader configured")

var (
	ErrNotSVG   = errors.New("Please select an SVG file")
	ErrNotImage = errors.New("Please select an image file")
)

// CheckFile sniffs data and reports whether it is of the given kind.
func CheckFile(kind FileKind, data []byte) error {
	switch kind {
	case SVGFile:
		if !mimetype.Detect(data).Is("image/svg+xml") {
			return ErrNotSVG
		}
	case ImageFile:
		if !strings.HasPrefix(mimetype.Detect(data).String(), "image/") {
			return ErrNotImage
		}
	}
	return nil
}

// Attachment is a file chosen for a draft, uploaded when the draft is
// saved. Apply stores the resulting URL on the draft.
type Attachment[T any] struct {
	What     string
	Filename string
	Data     []byte
	Apply    func(draft *T, url string)
}

// uploadAll uploads attachments in order, applying each URL to draft as
// it arrives. On failure it returns the attachments still pending.
func uploadAll[T any](ctx context.Context, opts Options, draft *T, pending []Attachment[T]) ([]Attachment[T], error) {
	for i, a := range pending {
		var (
			url string
			err = errNoUploader
		)
		if opts.Uploader != nil {
			url, err = opts.Uploader.Upload(ctx, a.Filename, bytes.NewReader(a.Data))
		}
		if err != nil {
			opts.Logger.Warn("upload failed", "what", a.What, "error", err)
			opts.Notifier.Alert("Failed to upload " + a.What)
			return pending[i:], err
		}
		a.Apply(draft, url)
	}
	return nil, nil
}
