package profile

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/darkforge/internal/types"
)

type answerKind int

const (
	kindText answerKind = iota
	kindNumber
	kindList
)

type question struct {
	field    types.Field
	label    string
	kind     answerKind
	required bool
}

type section struct {
	title     string
	questions []question
}

var sections = []section{
	{"Basic information", []question{
		{types.FieldFirstName, "First name", kindText, true},
		{types.FieldLastName, "Last name", kindText, true},
		{types.FieldNickname, "Nickname", kindText, false},
		{types.FieldBirthDay, "Birth day (1-31)", kindNumber, false},
		{types.FieldBirthMonth, "Birth month (1-12)", kindNumber, false},
		{types.FieldBirthYear, "Birth year", kindNumber, false},
		{types.FieldBirthplace, "Birthplace", kindText, false},
		{types.FieldResidence, "Current city", kindText, false},
		{types.FieldPhone, "Phone number", kindText, false},
		{types.FieldEmail, "Email", kindText, false},
	}},
	{"Relationships", []question{
		{types.FieldFather, "Father's name", kindText, false},
		{types.FieldMother, "Mother's name", kindText, false},
		{types.FieldSpouse, "Spouse's name", kindText, false},
		{types.FieldChild, "Child's name", kindText, false},
		{types.FieldPet, "Pet's name", kindText, false},
		{types.FieldExPartner, "Ex-partner's name", kindText, false},
	}},
	{"Education and interests", []question{
		{types.FieldCompany, "Company", kindText, false},
		{types.FieldSchool, "School", kindText, false},
		{types.FieldCollege, "College", kindText, false},
		{types.FieldMovie, "Favorite movie", kindText, false},
		{types.FieldSong, "Favorite song", kindText, false},
		{types.FieldBand, "Favorite band", kindText, false},
		{types.FieldSport, "Favorite sport", kindText, false},
		{types.FieldBook, "Favorite book", kindText, false},
		{types.FieldCelebrity, "Favorite celebrity", kindText, false},
		{types.FieldGamerTag, "Gamer tag", kindText, false},
		{types.FieldDeviceName, "Device names (comma separated)", kindList, false},
		{types.FieldFavoriteNumber, "Favorite number", kindNumber, false},
	}},
	{"Online accounts", []question{
		{types.FieldFacebook, "Facebook ID", kindText, false},
		{types.FieldTwitter, "Twitter ID", kindText, false},
		{types.FieldInstagram, "Instagram ID", kindText, false},
		{types.FieldLinkedIn, "LinkedIn ID", kindText, false},
		{types.FieldGitHub, "GitHub ID", kindText, false},
		{types.FieldReddit, "Reddit ID", kindText, false},
		{types.FieldTikTok, "TikTok ID", kindText, false},
		{types.FieldSnapchat, "Snapchat ID", kindText, false},
		{types.FieldPinterest, "Pinterest ID", kindText, false},
		{types.FieldYouTube, "YouTube ID", kindText, false},
	}},
}

// Prompter runs an interactive profile session over a line-oriented stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter reading answers from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Collect asks for every profile field in turn. Blank answers leave optional
// fields unset; required fields and malformed numbers are asked again.
func (p *Prompter) Collect(ctx context.Context) (*types.Profile, error) {
	answers := make(map[string]any)
	closed := false

	for _, s := range sections {
		fmt.Fprintf(p.out, "\n=== %s ===\n", s.title)
		for _, q := range s.questions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			value, ok, err := p.ask(q, &closed)
			if err != nil {
				return nil, err
			}
			if ok {
				answers[string(q.field)] = value
			}
		}
	}

	doc, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	return Parse(doc, FormatJSON)
}

func (p *Prompter) ask(q question, closed *bool) (any, bool, error) {
	for {
		suffix := ""
		if q.required {
			suffix = " (required)"
		}
		fmt.Fprintf(p.out, "%s%s: ", q.label, suffix)

		line, err := p.readLine(closed)
		if err != nil {
			return nil, false, err
		}

		if line == "" {
			if q.required {
				if *closed {
					return nil, false, ErrInputClosed
				}
				fmt.Fprintln(p.out, "This field is required.")
				continue
			}
			return nil, false, nil
		}

		switch q.kind {
		case kindNumber:
			n, err := strconv.Atoi(line)
			if err != nil {
				if *closed {
					return nil, false, ErrInputClosed
				}
				fmt.Fprintln(p.out, "Please enter a whole number.")
				continue
			}
			return n, true, nil
		case kindList:
			var items []string
			for _, item := range strings.Split(line, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
			return items, len(items) > 0, nil
		default:
			return line, true, nil
		}
	}
}

func (p *Prompter) readLine(closed *bool) (string, error) {
	if *closed {
		return "", nil
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		*closed = true
	}
	return strings.TrimSpace(line), nil
}
