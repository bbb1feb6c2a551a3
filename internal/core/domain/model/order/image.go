package order

import (
	"errors"
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
)

// ImageKind classifies the evidence images attached to an order over its
// lifecycle. Each kind slot holds at most one image; attaching a new one
// replaces the previous reference.
type ImageKind int

const (
	ImageKindUnknown ImageKind = iota
	ImageLogo
	ImageDesign
	ImagePayment
	ImageProductReady
	ImageShipping
	ImageInvoice
)

func getImageKindStrings() map[ImageKind]string {
	return map[ImageKind]string{
		ImageLogo:         "logo",
		ImageDesign:       "design",
		ImagePayment:      "payment",
		ImageProductReady: "product_ready",
		ImageShipping:     "shipping",
		ImageInvoice:      "invoice",
	}
}

// ImageKindFromString parses the persisted kind name.
func ImageKindFromString(name string) (ImageKind, error) {
	for k, s := range getImageKindStrings() {
		if s == name {
			return k, nil
		}
	}
	return ImageKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"imageKind", fmt.Errorf("%q is not a valid image kind", name))
}

func (k ImageKind) String() string {
	if s, ok := getImageKindStrings()[k]; ok {
		return s
	}
	return ""
}

// Validate checks that the image kind is defined.
func (k ImageKind) Validate() error {
	if _, ok := getImageKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"imageKind", fmt.Errorf("%d is not a valid image kind", k))
	}
	return nil
}

// Image is an immutable reference to a stored blob plus its media type.
// The blob itself lives in the blob store; the order only keeps the key.
type Image struct {
	kind     ImageKind
	ref      string
	mimeType string
}

// NewImage creates a validated image reference.
func NewImage(kind ImageKind, ref string, mimeType string) (Image, error) {
	var e []error

	if err := kind.Validate(); err != nil {
		e = append(e, err)
	}
	if strings.TrimSpace(ref) == "" {
		e = append(e, errs.NewValueIsRequiredError("ref"))
	}
	if strings.TrimSpace(mimeType) == "" {
		e = append(e, errs.NewValueIsRequiredError("mimeType"))
	}
	if len(e) > 0 {
		return Image{}, errors.Join(e...)
	}

	return Image{kind: kind, ref: ref, mimeType: mimeType}, nil
}

// Kind returns the image classification.
func (i Image) Kind() ImageKind {
	return i.kind
}

// Ref returns the blob store key of the stored bytes.
func (i Image) Ref() string {
	return i.ref
}

// MimeType returns the media type recorded at upload.
func (i Image) MimeType() string {
	return i.mimeType
}

// IsEmpty reports whether the image reference is the zero value.
func (i Image) IsEmpty() bool {
	return i == Image{}
}
