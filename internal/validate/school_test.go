package validate

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a multipart.FileHeader without going through an
// actual multipart body.
func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func validInput() SchoolInput {
	return SchoolInput{
		Name:    "Springfield Elementary",
		Address: "19 Plympton Street",
		City:    "Springfield",
		State:   "Oregon",
		Contact: "9876543210",
		EmailID: "office@springfield.edu",
		Image:   fileHeader("front.png", "image/png", 2048),
	}
}

func TestSchoolValid(t *testing.T) {
	draft, issues := School(validInput())
	require.Nil(t, issues)
	assert.Equal(t, "Springfield Elementary", draft.Name)
	assert.Equal(t, int64(9876543210), draft.Contact)
	assert.Equal(t, "office@springfield.edu", draft.EmailID)
}

func TestSchoolContactBoundaries(t *testing.T) {
	testCases := []struct {
		name    string
		contact string
		valid   bool
	}{
		{"nine digits rejected", "999999999", false},
		{"lower bound accepted", "1000000000", true},
		{"upper bound accepted", "9999999999", true},
		{"eleven digits rejected", "10000000000", false},
		{"leading zero rejected", "0123456789", false},
		{"not a number rejected", "call-me", false},
		{"empty rejected", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Contact = tc.contact
			_, issues := School(in)
			if tc.valid {
				assert.Nil(t, issues)
			} else {
				require.Contains(t, issues, "contact")
				assert.Equal(t, []string{"Must be a 10-digit phone number"}, issues["contact"])
			}
		})
	}
}

func TestSchoolEmail(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		valid bool
	}{
		{"minimal shape accepted", "a@b", true},
		{"ordinary address accepted", "admin@school.example.com", true},
		{"no at-sign rejected", "not-an-email", false},
		{"whitespace rejected", "a b@c", false},
		{"empty rejected", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.EmailID = tc.email
			_, issues := School(in)
			if tc.valid {
				assert.Nil(t, issues)
			} else {
				require.Contains(t, issues, "email_id")
				assert.Equal(t, []string{"Invalid email address"}, issues["email_id"])
			}
		})
	}
}

func TestSchoolImage(t *testing.T) {
	testCases := []struct {
		name    string
		image   *multipart.FileHeader
		message string
	}{
		{"missing file", nil, "Image is required"},
		{"zero bytes", fileHeader("empty.png", "image/png", 0), "Image is required"},
		{"exactly 5MiB accepted", fileHeader("big.jpg", "image/jpeg", MaxImageBytes), ""},
		{"one byte over", fileHeader("big.jpg", "image/jpeg", MaxImageBytes+1), "Image must be 5MB or less."},
		{"gif rejected", fileHeader("anim.gif", "image/gif", 1024), "Only .jpg, .png, or .webp formats are supported."},
		{"png accepted", fileHeader("logo.png", "image/png", 1024), ""},
		{"webp accepted", fileHeader("photo.webp", "image/webp", 1024), ""},
		{"content type with params accepted", fileHeader("logo.png", "image/png; charset=binary", 1024), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Image = tc.image
			_, issues := School(in)
			if tc.message == "" {
				assert.Nil(t, issues)
			} else {
				require.Contains(t, issues, "image")
				assert.Equal(t, []string{tc.message}, issues["image"])
			}
		})
	}
}

// All violations are collected in one pass; a bad contact must not hide a
// missing name.
func TestSchoolCollectsAllIssues(t *testing.T) {
	_, issues := School(SchoolInput{})
	require.NotNil(t, issues)

	for _, field := range []string{"name", "address", "city", "state", "contact", "email_id", "image"} {
		assert.Contains(t, issues, field, "expected an issue for %s", field)
	}
	assert.Equal(t, []string{"School name is required"}, issues["name"])
	assert.Equal(t, []string{"Address is required"}, issues["address"])
	assert.Equal(t, []string{"City is required"}, issues["city"])
	assert.Equal(t, []string{"State is required"}, issues["state"])
}
