package student

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/roster/core"
)

var (
	nameTag  = "student_name"
	NameText = "Names should only contain alphanumeric characters and spaces, and it should not be blank"

	phoneTag   = "student_phone"
	PhoneText  = "Phone numbers should only contain numbers, and it should be between 3 and 15 digits long"
	phoneRegex = regexp.MustCompile(`^\d{3,15}$`)

	emailTag  = "student_email"
	EmailText = "Emails should be of the format local-part@domain and adhere to the standard email format"

	handleTag   = "student_handle"
	HandleText  = "Handles should start with @, contain no spaces, and should not be blank after the @"
	handleRegex = regexp.MustCompile(`^@\S+$`)

	tutorialGroupTag   = "tutorial_group"
	TutorialGroupText  = "Tutorial group should be TG followed by digits, or be left blank to indicate no tutorial group assigned"
	tutorialGroupRegex = regexp.MustCompile(`^TG\d+$`)

	tutorialClassTag  = "tutorial_class"
	TutorialClassText = "Tutorial class should be one of the following: " + tutorialClassList()

	assignmentTag  = "assignment"
	AssignmentText = "Assignment should be one of the following: " + assignmentList()

	gradeTag      = "grade"
	GradeText     = "Grade should be a number between 0 and 100 inclusive, with up to 2 decimal places"
	gradeRawRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)

	indexTag   = "index"
	IndexText  = "Index must be a non-zero positive integer."
	indexRegex = regexp.MustCompile(`^\d+$`)

	tagTag  = "student_tag"
	TagText = "Tags names should be alphanumeric"
)

func init() {
	core.RegisterRegexValidation(nameTag, regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`), NameText)
	core.RegisterRegexValidation(phoneTag, phoneRegex, PhoneText)
	core.RegisterRegexValidation(handleTag, handleRegex, HandleText)
	core.RegisterRegexValidation(tutorialGroupTag, tutorialGroupRegex, TutorialGroupText)
	core.RegisterRegexValidation(gradeTag, gradeRegex, GradeText)
	core.RegisterRegexValidation(tagTag, regexp.MustCompile(`^[A-Za-z0-9]+$`), TagText)

	_ = core.Validate.RegisterValidation(emailTag, emailValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, emailTag, EmailText)

	_ = core.Validate.RegisterValidation(tutorialClassTag, tutorialClassValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, tutorialClassTag, TutorialClassText)

	_ = core.Validate.RegisterValidation(assignmentTag, assignmentValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, assignmentTag, AssignmentText)

	_ = core.Validate.RegisterValidation(indexTag, indexValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, indexTag, IndexText)
}

func emailValidation(fl validator.FieldLevel) bool {
	return core.Validate.Var(fl.Field().String(), "email") == nil
}

func tutorialClassValidation(fl validator.FieldLevel) bool {
	_, ok := lookupTutorialClass(fl.Field().String())
	return ok
}

func assignmentValidation(fl validator.FieldLevel) bool {
	_, ok := lookupAssignment(fl.Field().String())
	return ok
}

// indexValidation accepts digits only, at least 1 and within the int32 range.
func indexValidation(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !indexRegex.MatchString(s) {
		return false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && n >= 1 && n <= math.MaxInt32
}

// validateField checks value against tag and returns a *core.ValidationError naming field.
func validateField(field, value, tag string) error {
	if err := core.Validate.Var(value, tag); err != nil {
		return fieldError(field, core.TranslateError(err))
	}
	return nil
}

func fieldError(field, msg string) error {
	return core.NewValidationError(errors.New(msg), core.FieldError{Field: field, Error: msg})
}

func ParseName(raw string) (Name, error) {
	s := core.CleanString(raw)
	if err := validateField("name", s, nameTag); err != nil {
		return "", err
	}
	return Name(s), nil
}

func ParsePhone(raw string) (Phone, error) {
	s := core.CleanString(raw)
	if err := validateField("phone", s, phoneTag); err != nil {
		return "", err
	}
	return Phone(s), nil
}

func ParseEmail(raw string) (Email, error) {
	s := core.CleanString(raw)
	if err := validateField("email", s, emailTag); err != nil {
		return "", err
	}
	return Email(s), nil
}

func ParseHandle(raw string) (Handle, error) {
	s := core.CleanString(raw)
	if err := validateField("handle", s, handleTag); err != nil {
		return "", err
	}
	return Handle(s), nil
}

// ParseTutorialGroup upper-cases raw and prepends "TG" to bare digits. Blank means unassigned.
func ParseTutorialGroup(raw string) (TutorialGroup, error) {
	s := strings.ToUpper(core.CleanString(raw))
	if s == "" {
		return Unassigned, nil
	}
	if !strings.HasPrefix(s, "TG") {
		s = "TG" + s
	}
	if err := validateField("tutorial group", s, tutorialGroupTag); err != nil {
		return "", err
	}
	return TutorialGroup(s), nil
}

func ParseTutorialClass(raw string) (TutorialClass, error) {
	s := core.CleanString(raw)
	if err := validateField("tutorial class", s, tutorialClassTag); err != nil {
		return 0, err
	}
	c, _ := lookupTutorialClass(s)
	return c, nil
}

func ParseAssignment(raw string) (Assignment, error) {
	s := core.CleanString(raw)
	if err := validateField("assignment", s, assignmentTag); err != nil {
		return 0, err
	}
	a, _ := lookupAssignment(s)
	return a, nil
}

// ParseGrade normalizes raw to 2 decimal places. Blank resets the grade to Unset.
// The numeric range is checked before rounding so 100.001 is rejected.
func ParseGrade(raw string) (Grade, error) {
	s := core.CleanString(raw)
	if s == "" {
		return Unset, nil
	}
	if !gradeRawRegex.MatchString(s) {
		return Unset, fieldError("grade", GradeText)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 100 {
		return Unset, fieldError("grade", GradeText)
	}
	g := FormatGrade(v)
	if err := validateField("grade", string(g), gradeTag); err != nil {
		return Unset, err
	}
	return g, nil
}

// ParseIndex returns the 1-based index held by raw.
func ParseIndex(raw string) (int, error) {
	s := core.CleanString(raw)
	if err := validateField("index", s, indexTag); err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(s)
	return n, nil
}

// ParseIndices parses whitespace separated 1-based indices.
func ParseIndices(raw string) ([]int, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, fieldError("index", IndexText)
	}
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := ParseIndex(f)
		if err != nil {
			return nil, err
		}
		indices = append(indices, n)
	}
	return indices, nil
}

func ParseTag(raw string) (Tag, error) {
	s := core.CleanString(raw)
	if err := validateField("tag", s, tagTag); err != nil {
		return "", err
	}
	return Tag(s), nil
}

// ParseTags parses every raw tag, keeping each distinct tag once.
func ParseTags(raws []string) ([]Tag, error) {
	tags := make([]Tag, 0, len(raws))
	for _, raw := range raws {
		t, err := ParseTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tagSet(tags), nil
}
