//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name       string
		profile    *Profile
		wantErr    bool
		wantFields []Field
	}{
		{
			name:    "names only",
			profile: &Profile{FirstName: "John", LastName: "Smith"},
		},
		{
			name:       "missing first name",
			profile:    &Profile{LastName: "Smith"},
			wantErr:    true,
			wantFields: []Field{FieldFirstName},
		},
		{
			name:       "missing last name",
			profile:    &Profile{FirstName: "John"},
			wantErr:    true,
			wantFields: []Field{FieldLastName},
		},
		{
			name:       "both names missing",
			profile:    &Profile{},
			wantErr:    true,
			wantFields: []Field{FieldFirstName, FieldLastName},
		},
		{
			name:       "blank first name",
			profile:    &Profile{FirstName: "   ", LastName: "Smith"},
			wantErr:    true,
			wantFields: []Field{FieldFirstName},
		},
		{
			name:       "month out of range",
			profile:    &Profile{FirstName: "John", LastName: "Smith", BirthMonth: IntPtr(13)},
			wantErr:    true,
			wantFields: []Field{FieldBirthMonth},
		},
		{
			name:       "invalid email",
			profile:    &Profile{FirstName: "John", LastName: "Smith", Email: StringPtr("not-an-email")},
			wantErr:    true,
			wantFields: []Field{FieldEmail},
		},
		{
			name: "full valid profile",
			profile: &Profile{
				FirstName:  "John",
				LastName:   "Smith",
				BirthDay:   IntPtr(3),
				BirthMonth: IntPtr(9),
				BirthYear:  IntPtr(1985),
				Email:      StringPtr("john@example.com"),
				Pet:        StringPtr("Buddy"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var invalid *InvalidProfileError
			require.True(t, errors.As(err, &invalid), "error should be InvalidProfileError")
			for _, f := range tt.wantFields {
				assert.True(t, invalid.HasField(f), "expected field %s in error: %v", f, err)
			}
		})
	}
}

func TestProfile_Validate_Nil(t *testing.T) {
	var p *Profile
	err := p.Validate()
	var invalid *InvalidProfileError
	require.ErrorAs(t, err, &invalid)
}

func TestProfile_Values(t *testing.T) {
	p := &Profile{
		FirstName:   "John",
		LastName:    "Smith",
		BirthYear:   IntPtr(1985),
		BirthDay:    IntPtr(3),
		Pet:         StringPtr("Buddy"),
		Nickname:    StringPtr("  "),
		DeviceNames: []string{"iPhone", "", " DellLaptop "},
	}

	assert.Equal(t, []string{"John"}, p.Values(FieldFirstName))
	assert.Equal(t, []string{"1985"}, p.Values(FieldBirthYear))
	assert.Equal(t, []string{"3"}, p.Values(FieldBirthDay))
	assert.Equal(t, []string{"Buddy"}, p.Values(FieldPet))
	assert.Equal(t, []string{"iPhone", "DellLaptop"}, p.Values(FieldDeviceName))

	assert.Nil(t, p.Values(FieldNickname), "blank values are absent")
	assert.Nil(t, p.Values(FieldSpouse))
	assert.Nil(t, p.Values(FieldBirthMonth))
	assert.Nil(t, p.Values(Field("unknown_field")))
}

func TestProfile_Present(t *testing.T) {
	p := &Profile{
		FirstName: "John",
		LastName:  "Smith",
		BirthYear: IntPtr(1985),
		Pet:       StringPtr("Buddy"),
	}

	present := p.Present()
	assert.Len(t, present, 4)
	assert.True(t, present.Has(FieldFirstName))
	assert.True(t, present.Has(FieldLastName))
	assert.True(t, present.Has(FieldBirthYear))
	assert.True(t, present.Has(FieldPet))
	assert.False(t, present.Has(FieldMother))
}

func TestProfile_JSONUnknownKeysIgnored(t *testing.T) {
	input := `{
		"first_name": "John",
		"last_name": "Smith",
		"birth_year": 1985,
		"pet_name": "Buddy",
		"shoe_size": 44
	}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(input), &p))
	require.NoError(t, p.Validate())
	assert.Equal(t, 1985, *p.BirthYear)
	assert.Equal(t, "Buddy", *p.Pet)
	assert.Nil(t, p.Mother)
}

func TestInvalidProfileError_Message(t *testing.T) {
	err := &InvalidProfileError{
		Message: "profile validation failed",
		Fields: []ProfileFieldError{
			{Field: FieldFirstName, Message: "is required"},
		},
	}
	assert.Contains(t, err.Error(), "first_name is required")
	assert.Nil(t, err.Unwrap())
}
