// Package types provides type definitions for structured data used throughout the darkforge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names one slot of the profile record. The value is the JSON key.
type Field string

// Identity fields
const (
	FieldFirstName  Field = "first_name"
	FieldLastName   Field = "last_name"
	FieldNickname   Field = "nickname"
	FieldBirthDay   Field = "birthdate"
	FieldBirthMonth Field = "birth_month"
	FieldBirthYear  Field = "birth_year"
	FieldBirthplace Field = "birthplace"
	FieldResidence  Field = "residence"
	FieldPhone      Field = "phone_number"
	FieldEmail      Field = "email"
)

// Relational fields
const (
	FieldFather    Field = "father_name"
	FieldMother    Field = "mother_name"
	FieldSpouse    Field = "spouse_name"
	FieldChild     Field = "child_name"
	FieldPet       Field = "pet_name"
	FieldExPartner Field = "ex_partner_name"
)

// Affiliation and preference fields
const (
	FieldCompany        Field = "company_name"
	FieldSchool         Field = "school_name"
	FieldCollege        Field = "college_name"
	FieldMovie          Field = "favorite_movie"
	FieldSong           Field = "favorite_song"
	FieldBand           Field = "favorite_band"
	FieldSport          Field = "favorite_sport"
	FieldBook           Field = "favorite_book"
	FieldCelebrity      Field = "favorite_celebrity"
	FieldGamerTag       Field = "gamer_tag"
	FieldDeviceName     Field = "device_names"
	FieldFavoriteNumber Field = "favorite_number"
)

// Social handle fields
const (
	FieldFacebook  Field = "facebook_id"
	FieldTwitter   Field = "twitter_id"
	FieldInstagram Field = "instagram_id"
	FieldLinkedIn  Field = "linkedin_id"
	FieldGitHub    Field = "github_id"
	FieldReddit    Field = "reddit_id"
	FieldTikTok    Field = "tiktok_id"
	FieldSnapchat  Field = "snapchat_id"
	FieldPinterest Field = "pinterest_id"
	FieldYouTube   Field = "youtube_id"
)

// SocialFields lists the social handle fields in display order.
var SocialFields = []Field{
	FieldFacebook, FieldTwitter, FieldInstagram, FieldLinkedIn, FieldGitHub,
	FieldReddit, FieldTikTok, FieldSnapchat, FieldPinterest, FieldYouTube,
}

// FieldSet is a set of fields that carry a value in some profile.
type FieldSet map[Field]struct{}

// Has reports whether f is in the set.
func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// NewFieldSet builds a FieldSet from the given fields.
func NewFieldSet(fields ...Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}
	return s
}

// Profile is the personal-data record used as generation input.
// Optional values are pointers; nil or blank means absent.
type Profile struct {
	// Basic information
	FirstName  string  `json:"first_name" yaml:"first_name" validate:"required,max=128"`
	LastName   string  `json:"last_name" yaml:"last_name" validate:"required,max=128"`
	Nickname   *string `json:"nickname,omitempty" yaml:"nickname,omitempty" validate:"omitempty,max=128"`
	BirthDay   *int    `json:"birthdate,omitempty" yaml:"birthdate,omitempty" validate:"omitempty,min=1,max=31"`
	BirthMonth *int    `json:"birth_month,omitempty" yaml:"birth_month,omitempty" validate:"omitempty,min=1,max=12"`
	BirthYear  *int    `json:"birth_year,omitempty" yaml:"birth_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Birthplace *string `json:"birthplace,omitempty" yaml:"birthplace,omitempty" validate:"omitempty,max=128"`
	Residence  *string `json:"residence,omitempty" yaml:"residence,omitempty" validate:"omitempty,max=128"`
	Phone      *string `json:"phone_number,omitempty" yaml:"phone_number,omitempty" validate:"omitempty,max=32"`
	Email      *string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`

	// Primary relationships
	Father    *string `json:"father_name,omitempty" yaml:"father_name,omitempty" validate:"omitempty,max=128"`
	Mother    *string `json:"mother_name,omitempty" yaml:"mother_name,omitempty" validate:"omitempty,max=128"`
	Spouse    *string `json:"spouse_name,omitempty" yaml:"spouse_name,omitempty" validate:"omitempty,max=128"`
	Child     *string `json:"child_name,omitempty" yaml:"child_name,omitempty" validate:"omitempty,max=128"`
	Pet       *string `json:"pet_name,omitempty" yaml:"pet_name,omitempty" validate:"omitempty,max=128"`
	ExPartner *string `json:"ex_partner_name,omitempty" yaml:"ex_partner_name,omitempty" validate:"omitempty,max=128"`

	// Education and interests
	Company        *string  `json:"company_name,omitempty" yaml:"company_name,omitempty" validate:"omitempty,max=128"`
	School         *string  `json:"school_name,omitempty" yaml:"school_name,omitempty" validate:"omitempty,max=128"`
	College        *string  `json:"college_name,omitempty" yaml:"college_name,omitempty" validate:"omitempty,max=128"`
	Movie          *string  `json:"favorite_movie,omitempty" yaml:"favorite_movie,omitempty" validate:"omitempty,max=128"`
	Song           *string  `json:"favorite_song,omitempty" yaml:"favorite_song,omitempty" validate:"omitempty,max=128"`
	Band           *string  `json:"favorite_band,omitempty" yaml:"favorite_band,omitempty" validate:"omitempty,max=128"`
	Sport          *string  `json:"favorite_sport,omitempty" yaml:"favorite_sport,omitempty" validate:"omitempty,max=128"`
	Book           *string  `json:"favorite_book,omitempty" yaml:"favorite_book,omitempty" validate:"omitempty,max=128"`
	Celebrity      *string  `json:"favorite_celebrity,omitempty" yaml:"favorite_celebrity,omitempty" validate:"omitempty,max=128"`
	GamerTag       *string  `json:"gamer_tag,omitempty" yaml:"gamer_tag,omitempty" validate:"omitempty,max=128"`
	DeviceNames    []string `json:"device_names,omitempty" yaml:"device_names,omitempty" validate:"omitempty,dive,max=128"`
	FavoriteNumber *int     `json:"favorite_number,omitempty" yaml:"favorite_number,omitempty" validate:"omitempty,min=0"`

	// Social media and online accounts
	Facebook  *string `json:"facebook_id,omitempty" yaml:"facebook_id,omitempty" validate:"omitempty,max=128"`
	Twitter   *string `json:"twitter_id,omitempty" yaml:"twitter_id,omitempty" validate:"omitempty,max=128"`
	Instagram *string `json:"instagram_id,omitempty" yaml:"instagram_id,omitempty" validate:"omitempty,max=128"`
	LinkedIn  *string `json:"linkedin_id,omitempty" yaml:"linkedin_id,omitempty" validate:"omitempty,max=128"`
	GitHub    *string `json:"github_id,omitempty" yaml:"github_id,omitempty" validate:"omitempty,max=128"`
	Reddit    *string `json:"reddit_id,omitempty" yaml:"reddit_id,omitempty" validate:"omitempty,max=128"`
	TikTok    *string `json:"tiktok_id,omitempty" yaml:"tiktok_id,omitempty" validate:"omitempty,max=128"`
	Snapchat  *string `json:"snapchat_id,omitempty" yaml:"snapchat_id,omitempty" validate:"omitempty,max=128"`
	Pinterest *string `json:"pinterest_id,omitempty" yaml:"pinterest_id,omitempty" validate:"omitempty,max=128"`
	YouTube   *string `json:"youtube_id,omitempty" yaml:"youtube_id,omitempty" validate:"omitempty,max=128"`
}

// Validate checks mandatory fields and value ranges.
// Any failure is reported as an *InvalidProfileError.
func (p *Profile) Validate() error {
	if p == nil {
		return &InvalidProfileError{Message: "profile is nil"}
	}

	var fieldErrs []ProfileFieldError
	if strings.TrimSpace(p.FirstName) == "" {
		fieldErrs = append(fieldErrs, ProfileFieldError{Field: FieldFirstName, Message: "is required"})
	}
	if strings.TrimSpace(p.LastName) == "" {
		fieldErrs = append(fieldErrs, ProfileFieldError{Field: FieldLastName, Message: "is required"})
	}

	if err := newValidator().Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &InvalidProfileError{Message: "profile validation failed", Cause: err}
		}
		for _, fe := range verrs {
			field := Field(fe.Field())
			if fe.Tag() == "required" && (field == FieldFirstName || field == FieldLastName) {
				// already reported above
				continue
			}
			fieldErrs = append(fieldErrs, ProfileFieldError{
				Field:   field,
				Message: "failed '" + fe.Tag() + "' check",
			})
		}
	}

	if len(fieldErrs) > 0 {
		return &InvalidProfileError{Message: "profile validation failed", Fields: fieldErrs}
	}
	return nil
}

// Has reports whether the field carries a non-blank value.
func (p *Profile) Has(f Field) bool {
	return len(p.Values(f)) > 0
}

// Values returns the rendered values of a field. Absent fields return nil.
// Numeric fields render as decimal text; device_names returns one value per entry.
func (p *Profile) Values(f Field) []string {
	if p == nil {
		return nil
	}
	if f == FieldDeviceName {
		var out []string
		for _, d := range p.DeviceNames {
			if v := strings.TrimSpace(d); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	if f == FieldFirstName || f == FieldLastName {
		name := p.FirstName
		if f == FieldLastName {
			name = p.LastName
		}
		return single(&name)
	}
	if n, ok := p.intFields()[f]; ok {
		if n == nil {
			return nil
		}
		return []string{strconv.Itoa(*n)}
	}
	if s, ok := p.stringFields()[f]; ok {
		return single(s)
	}
	return nil
}

// Present returns the set of fields that carry a value.
func (p *Profile) Present() FieldSet {
	fields := make([]Field, 0, len(AllFields))
	for _, f := range AllFields {
		if p.Has(f) {
			fields = append(fields, f)
		}
	}
	return NewFieldSet(fields...)
}

// AllFields lists every profile field in declaration order.
var AllFields = []Field{
	FieldFirstName, FieldLastName, FieldNickname, FieldBirthDay, FieldBirthMonth, FieldBirthYear,
	FieldBirthplace, FieldResidence, FieldPhone, FieldEmail,
	FieldFather, FieldMother, FieldSpouse, FieldChild, FieldPet, FieldExPartner,
	FieldCompany, FieldSchool, FieldCollege, FieldMovie, FieldSong, FieldBand, FieldSport,
	FieldBook, FieldCelebrity, FieldGamerTag, FieldDeviceName, FieldFavoriteNumber,
	FieldFacebook, FieldTwitter, FieldInstagram, FieldLinkedIn, FieldGitHub,
	FieldReddit, FieldTikTok, FieldSnapchat, FieldPinterest, FieldYouTube,
}

func (p *Profile) intFields() map[Field]*int {
	return map[Field]*int{
		FieldBirthDay:       p.BirthDay,
		FieldBirthMonth:     p.BirthMonth,
		FieldBirthYear:      p.BirthYear,
		FieldFavoriteNumber: p.FavoriteNumber,
	}
}

func (p *Profile) stringFields() map[Field]*string {
	return map[Field]*string{
		FieldNickname:   p.Nickname,
		FieldBirthplace: p.Birthplace,
		FieldResidence:  p.Residence,
		FieldPhone:      p.Phone,
		FieldEmail:      p.Email,
		FieldFather:     p.Father,
		FieldMother:     p.Mother,
		FieldSpouse:     p.Spouse,
		FieldChild:      p.Child,
		FieldPet:        p.Pet,
		FieldExPartner:  p.ExPartner,
		FieldCompany:    p.Company,
		FieldSchool:     p.School,
		FieldCollege:    p.College,
		FieldMovie:      p.Movie,
		FieldSong:       p.Song,
		FieldBand:       p.Band,
		FieldSport:      p.Sport,
		FieldBook:       p.Book,
		FieldCelebrity:  p.Celebrity,
		FieldGamerTag:   p.GamerTag,
		FieldFacebook:   p.Facebook,
		FieldTwitter:    p.Twitter,
		FieldInstagram:  p.Instagram,
		FieldLinkedIn:   p.LinkedIn,
		FieldGitHub:     p.GitHub,
		FieldReddit:     p.Reddit,
		FieldTikTok:     p.TikTok,
		FieldSnapchat:   p.Snapchat,
		FieldPinterest:  p.Pinterest,
		FieldYouTube:    p.YouTube,
	}
}

func single(s *string) []string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return []string{v}
}

// newValidator returns a validator that reports JSON field names.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
