package validate

import (
	"mime"
	"mime/multipart"
	"regexp"
	"strconv"
	"strings"
)

// MaxImageBytes is the upload size limit for school images.
const MaxImageBytes = 5 * 1024 * 1024

// Contact numbers are checked as a numeric range rather than a digit
// count. [1000000000, 9999999999] covers every 10-digit number without a
// leading zero; numbers starting with 0 are rejected. Kept as-is for
// compatibility with existing clients.
const (
	contactMin = 1000000000
	contactMax = 9999999999
)

// Deliberately permissive: anything shaped like local@domain passes.
var emailPattern = regexp.MustCompile(`^\S+@\S+$`)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// SchoolInput carries the raw fields extracted from a multipart form
// before any typing or constraint checks.
type SchoolInput struct {
	Name    string
	Address string
	City    string
	State   string
	Contact string
	EmailID string
	Image   *multipart.FileHeader
}

// SchoolDraft is a fully typed, constraint-satisfying school submission.
// The image itself is not part of the draft; it is uploaded separately
// and only its resulting URL is persisted.
type SchoolDraft struct {
	Name    string
	Address string
	City    string
	State   string
	Contact int64
	EmailID string
}

// School checks every field of the input independently and returns either
// a typed draft or a map of field names to violation messages. All fields
// are always checked; a failure in one never hides a failure in another.
func School(in SchoolInput) (SchoolDraft, map[string][]string) {
	issues := make(map[string][]string)

	// Presence checks only; a field of whitespace still counts as set.
	if in.Name == "" {
		issues["name"] = append(issues["name"], "School name is required")
	}
	if in.Address == "" {
		issues["address"] = append(issues["address"], "Address is required")
	}
	if in.City == "" {
		issues["city"] = append(issues["city"], "City is required")
	}
	if in.State == "" {
		issues["state"] = append(issues["state"], "State is required")
	}

	contact, err := strconv.ParseInt(strings.TrimSpace(in.Contact), 10, 64)
	if err != nil || contact < contactMin || contact > contactMax {
		issues["contact"] = append(issues["contact"], "Must be a 10-digit phone number")
	}

	if !emailPattern.MatchString(in.EmailID) {
		issues["email_id"] = append(issues["email_id"], "Invalid email address")
	}

	switch {
	case in.Image == nil || in.Image.Size == 0:
		issues["image"] = append(issues["image"], "Image is required")
	case in.Image.Size > MaxImageBytes:
		issues["image"] = append(issues["image"], "Image must be 5MB or less.")
	case !allowedImageTypes[ImageContentType(in.Image)]:
		issues["image"] = append(issues["image"], "Only .jpg, .png, or .webp formats are supported.")
	}

	if len(issues) > 0 {
		return SchoolDraft{}, issues
	}

	return SchoolDraft{
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		State:   in.State,
		Contact: contact,
		EmailID: in.EmailID,
	}, nil
}

// ImageContentType returns the media type of an uploaded file part with
// any parameters (charset, boundary) stripped.
func ImageContentType(fh *multipart.FileHeader) string {
	ct := fh.Header.Get("Content-Type")
	if media, _, err := mime.ParseMediaType(ct); err == nil {
		return media
	}
	return ct
}
