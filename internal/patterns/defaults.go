package patterns

import "github.com/jonathan/darkforge/internal/types"

const (
	first   = types.FieldFirstName
	last    = types.FieldLastName
	nick    = types.FieldNickname
	day     = types.FieldBirthDay
	month   = types.FieldBirthMonth
	year    = types.FieldBirthYear
	father  = types.FieldFather
	mother  = types.FieldMother
	spouse  = types.FieldSpouse
	child   = types.FieldChild
	pet     = types.FieldPet
	ex      = types.FieldExPartner
	company = types.FieldCompany
	school  = types.FieldSchool
	college = types.FieldCollege
	gamer   = types.FieldGamerTag
	device  = types.FieldDeviceName
	favnum  = types.FieldFavoriteNumber
)

// defaultTemplates is ordered by how often the idiom shows up in leaked
// password corpora: name plus year first, decorations and handles last.
var defaultTemplates = []Template{
	// Name and year
	T(F(first), F(year)),
	T(F(first), F(last)),
	T(F(first), F(last), F(year)),
	T(F(last), F(year)),
	T(F(nick), F(year)),
	T(F(pet), F(year)),
	T(F(first), Year2(year)),
	T(F(last), F(first)),
	T(F(last), F(first), F(year)),
	T(F(first), Pad2(month), F(year)),
	T(F(last), Pad2(month), F(year)),
	T(F(first), Pad2(day), F(year)),
	T(F(last), Pad2(day), F(year)),

	// Name and birthdate
	T(F(first), Pad2(day), Pad2(month)),
	T(F(last), Pad2(day), Pad2(month)),
	T(F(first), F(last), Pad2(day), Pad2(month)),
	T(F(last), F(first), Pad2(day), Pad2(month)),
	T(Pad2(day), Pad2(month), F(year)),

	// Pets, nicknames and favorite number
	T(F(first), F(pet)),
	T(F(last), F(pet)),
	T(F(pet), F(first), F(year)),
	T(F(pet), Year2(year)),
	T(F(nick), Year2(year)),
	T(F(nick), Lit("123")),
	T(F(first), F(favnum)),
	T(F(nick), F(favnum)),
	T(F(pet), F(favnum)),

	// Name with interests
	T(F(first), F(types.FieldMovie)),
	T(F(last), F(types.FieldMovie)),
	T(F(first), F(types.FieldSong)),
	T(F(last), F(types.FieldSong)),
	T(F(first), F(types.FieldBand)),
	T(F(last), F(types.FieldBand)),
	T(F(first), F(types.FieldSport)),
	T(F(last), F(types.FieldSport)),
	T(F(first), F(types.FieldBook)),
	T(F(last), F(types.FieldBook)),
	T(F(first), F(types.FieldCelebrity)),
	T(F(last), F(types.FieldCelebrity)),
	T(F(first), F(gamer)),
	T(F(last), F(gamer)),
	T(F(types.FieldBand), F(year)),
	T(F(types.FieldSport), F(year)),
	T(F(types.FieldCelebrity), F(year)),
	T(F(gamer), F(year)),
	T(F(gamer), F(favnum)),
	T(F(gamer), Lit("123")),

	// Short forms and initials
	T(Prefix(first, 3), Prefix(last, 3), F(year)),
	T(Prefix(first, 2), Prefix(last, 2), F(year)),
	T(Initial(first), Initial(last), F(year)),
	T(Initial(first), F(last), Pad2(day), Pad2(month)),
	T(Initial(last), F(first), Pad2(day), Pad2(month)),
	T(F(first), Initial(last), Pad2(day), Pad2(month)),
	T(F(last), Initial(first), Pad2(day), Pad2(month)),
	T(Initial(first), F(last)),
	T(F(first), Initial(last)),

	// Names and year with special characters
	T(F(last), Lit("@"), F(year)),
	T(F(first), Lit("@"), F(year)),
	T(F(first), F(last), Lit("@"), F(year)),
	T(F(year), Lit("@"), F(first)),
	T(F(first), Initial(last), Lit("@"), F(year)),
	T(F(last), Initial(first), Lit("@"), F(year)),
	T(Initial(first), F(last), Lit("@"), F(year)),
	T(Initial(last), F(first), Lit("@"), F(year)),
	T(F(first), F(year), Lit("!")),
	T(F(last), F(year), Lit("?")),
	T(F(first), F(last), Lit("#")),
	T(Pad2(day), Pad2(month), F(year), Lit("@")),
	T(F(pet), F(year), Lit("$")),

	// Relationships
	T(F(father), F(year)),
	T(F(mother), F(year)),
	T(F(first), F(father), F(year)),
	T(F(last), F(mother), F(year)),
	T(F(spouse), F(year)),
	T(F(first), F(spouse), F(year)),
	T(F(last), F(spouse), F(year)),
	T(F(child), F(year)),
	T(F(first), F(child), F(year)),
	T(F(last), F(child), F(year)),
	T(Initial(father), Initial(mother), F(year)),
	T(F(pet), Initial(first), Initial(last), F(year)),
	T(F(spouse), F(child), F(year)),
	T(F(child), Pad2(day), Pad2(month)),
	T(F(ex), F(year)),
	T(F(first), F(ex)),

	// Creative combinations
	T(F(first), F(mother), F(pet)),
	T(F(last), F(father), F(spouse)),
	T(F(first), F(mother), F(year)),
	T(F(last), F(father), F(year)),
	T(F(pet), F(first), Pad2(day), Pad2(month)),
	T(F(spouse), F(last), F(year)),
	T(F(child), F(first), F(year)),
	T(F(first), F(last), F(pet), F(year)),

	// Affiliations and places
	T(F(company), F(year)),
	T(F(company), Lit("123")),
	T(F(first), Lit("@"), F(company)),
	T(F(school), F(year)),
	T(F(college), F(year)),
	T(F(college), Year2(year)),
	T(F(types.FieldBirthplace), F(year)),
	T(F(types.FieldResidence), F(year)),
	T(F(first), Suffix(types.FieldPhone, 4)),

	// Devices
	T(F(device)),
	T(F(device), F(year)),
	T(F(first), F(device)),

	// Simple sequences
	T(F(first), Lit("123456")),
	T(Lit("123456"), F(last)),
	T(F(year), Lit("abcdef")),
	T(Lit("abcdef"), F(year)),
	T(F(first), Lit("password")),
	T(Lit("password"), F(last)),

	// Birthdate layouts
	T(Pad2(month), Lit("/"), Pad2(day), Lit("/"), F(year)),
	T(Pad2(day), Lit("-"), Pad2(month), Lit("-"), F(year)),
	T(F(first), Pad2(month), Lit("/"), Pad2(day)),
	T(F(last), F(year), Lit("-"), Pad2(month)),
	T(F(year), F(first), F(last)),

	// Reversed strings
	T(Rev(first), F(year)),
	T(Rev(last), F(year)),
	T(F(first), Rev(last), F(year)),
	T(Rev(first), F(last), F(year)),
	T(Rev(year), F(first)),
	T(Rev(year), F(last)),
	T(F(first), Rev(year), F(last)),

	// Special characters in the middle
	T(F(first), Lit("!"), F(last), F(year)),
	T(F(last), Lit("@"), F(first), F(year)),
	T(F(year), Lit("#"), F(first), F(last)),
	T(F(first), F(last), Lit("$"), Pad2(day), Pad2(month)),
	T(Pad2(day), Pad2(month), Lit("%"), F(first), F(last)),

	// Social handles
	T(F(types.FieldFacebook)),
	T(F(types.FieldTwitter)),
	T(F(types.FieldInstagram)),
	T(F(types.FieldLinkedIn)),
	T(F(types.FieldGitHub)),
	T(F(types.FieldReddit)),
	T(F(types.FieldTikTok)),
	T(F(types.FieldSnapchat)),
	T(F(types.FieldPinterest)),
	T(F(types.FieldYouTube)),
	T(F(types.FieldInstagram), F(year)),
	T(F(types.FieldTwitter), F(year)),
	T(F(types.FieldGitHub), F(year)),
}
