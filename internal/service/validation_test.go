package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/employee-directory/internal/domain"
)

var fixedNow = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func validDraft() domain.Draft {
	return domain.Draft{
		FullName:    "Cid",
		Gender:      domain.GenderMale,
		DateOfBirth: "2000-01-01",
		State:       "Texas",
		Active:      true,
	}
}

func TestValidateDraftAccepts(t *testing.T) {
	assert.Empty(t, ValidateDraft(validDraft(), fixedNow))
}

func TestValidateDraftReportsAllFieldsAtOnce(t *testing.T) {
	errs := ValidateDraft(domain.Draft{FullName: "", DateOfBirth: "2999-01-01", State: ""}, fixedNow)

	assert.Equal(t, FieldErrors{
		FieldFullName:    MsgFullNameRequired,
		FieldDateOfBirth: MsgDateOfBirthFuture,
		FieldState:       MsgStateRequired,
	}, errs)
}

func TestValidateDraftFullName(t *testing.T) {
	for _, name := range []string{"", " ", "\t\n"} {
		d := validDraft()
		d.FullName = name
		errs := ValidateDraft(d, fixedNow)
		assert.Equal(t, FieldErrors{FieldFullName: MsgFullNameRequired}, errs, "name %q", name)
	}
}

func TestValidateDraftDateOfBirth(t *testing.T) {
	cases := []struct {
		dob  string
		want string
	}{
		{"", MsgDateOfBirthRequired},
		{"not-a-date", MsgDateOfBirthInvalid},
		{"2000-13-01", MsgDateOfBirthInvalid},
		{"2026-10-15", MsgDateOfBirthFuture},
		{"2999-01-01", MsgDateOfBirthFuture},
		{"2026-10-14", ""},
		{"1950-06-30", ""},
	}
	for _, tc := range cases {
		d := validDraft()
		d.DateOfBirth = tc.dob
		errs := ValidateDraft(d, fixedNow)
		assert.Equal(t, tc.want, errs[FieldDateOfBirth], "dob %q", tc.dob)
		if tc.want == "" {
			assert.Empty(t, errs, "dob %q", tc.dob)
		}
	}
}

func TestValidateDraftState(t *testing.T) {
	d := validDraft()
	d.State = "Atlantis"
	assert.Equal(t, FieldErrors{FieldState: MsgStateInvalid}, ValidateDraft(d, fixedNow))

	d.State = "New Hampshire"
	assert.Empty(t, ValidateDraft(d, fixedNow))
}

func TestValidateDraftGender(t *testing.T) {
	d := validDraft()
	d.Gender = "Robot"
	assert.Equal(t, FieldErrors{FieldGender: MsgGenderInvalid}, ValidateDraft(d, fixedNow))

	d.Gender = ""
	assert.Empty(t, ValidateDraft(d, fixedNow))
}

func TestValidateDraftProfileImage(t *testing.T) {
	valid := []string{"", "https://i.pravatar.cc/150?img=1", "http://example.com/a.png", "data:image/png;base64,iVBORw0KGgo="}
	for _, ref := range valid {
		d := validDraft()
		d.ProfileImage = ref
		assert.Empty(t, ValidateDraft(d, fixedNow), "image %q", ref)
	}

	invalid := []string{"ftp://example.com/a.png", "data:text/plain;base64,aGk=", "not a url", "data:image/png"}
	for _, ref := range invalid {
		d := validDraft()
		d.ProfileImage = ref
		assert.Equal(t, FieldErrors{FieldProfileImage: MsgImageInvalid}, ValidateDraft(d, fixedNow), "image %q", ref)
	}
}
