package service

import (
	"net/url"
	"strings"
	"time"

	"github.com/spec-kit/employee-directory/internal/domain"
)

// Field names used as keys in FieldErrors.
const (
	FieldFullName     = "fullName"
	FieldGender       = "gender"
	FieldDateOfBirth  = "dateOfBirth"
	FieldState        = "state"
	FieldProfileImage = "profileImage"
)

// Validation messages shown next to the offending field.
const (
	MsgFullNameRequired    = "Full name is required"
	MsgDateOfBirthRequired = "Date of birth is required"
	MsgDateOfBirthInvalid  = "Date of birth must be a valid date (YYYY-MM-DD)"
	MsgDateOfBirthFuture   = "Date of birth cannot be in the future"
	MsgStateRequired       = "State is required"
	MsgStateInvalid        = "State is invalid"
	MsgGenderInvalid       = "Gender is invalid"
	MsgImageInvalid        = "Please select a valid image file"
)

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// ValidateDraft checks every field of draft independently; the draft is
// acceptable iff the result is empty. An empty gender is accepted because
// drafts fall back to the default gender.
func ValidateDraft(draft domain.Draft, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(draft.FullName) == "" {
		errs[FieldFullName] = MsgFullNameRequired
	}

	if draft.Gender != "" && !draft.Gender.Valid() {
		errs[FieldGender] = MsgGenderInvalid
	}

	dob := strings.TrimSpace(draft.DateOfBirth)
	if dob == "" {
		errs[FieldDateOfBirth] = MsgDateOfBirthRequired
	} else if parsed, err := time.ParseInLocation(domain.DateLayout, dob, now.Location()); err != nil {
		errs[FieldDateOfBirth] = MsgDateOfBirthInvalid
	} else if parsed.After(now) {
		errs[FieldDateOfBirth] = MsgDateOfBirthFuture
	}

	state := strings.TrimSpace(draft.State)
	if state == "" {
		errs[FieldState] = MsgStateRequired
	} else if !domain.IsKnownState(state) {
		errs[FieldState] = MsgStateInvalid
	}

	if draft.ProfileImage != "" && !validImageRef(draft.ProfileImage) {
		errs[FieldProfileImage] = MsgImageInvalid
	}

	return errs
}

func validImageRef(ref string) bool {
	if strings.HasPrefix(ref, "data:image/") {
		return strings.Contains(ref, ",")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
