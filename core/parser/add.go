package parser

import (
	"fmt"
	"strings"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/student"
)

// compulsory add fields, in the order they are reported when missing
var addCompulsory = []struct {
	prefix Prefix
	name   string
}{
	{PrefixName, "Name"},
	{PrefixPhone, "Phone"},
	{PrefixEmail, "Email"},
	{PrefixHandle, "Handle"},
}

// ParseAdd parses `n/NAME p/PHONE e/EMAIL u/HANDLE [tg/GROUP] [t/TAG]...`.
func ParseAdd(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixHandle, PrefixTutorialGroup, PrefixTag)

	var missing []string
	for _, f := range addCompulsory {
		if !am.Has(f.prefix) {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 || am.Preamble() != "" {
		var msg string
		kind := core.KindInvalidFormat
		if len(missing) > 0 {
			kind = core.KindMissingFields
			msg = command.MsgMissingCompulsoryFields + strings.Join(missing, ", ") + ".\n\n"
		}
		return nil, core.NewCommandError(kind, msg+fmt.Sprintf(command.MsgInvalidCommandFormat, command.AddUsage))
	}

	if err := am.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixHandle, PrefixTutorialGroup); err != nil {
		return nil, err
	}

	nameVal, _ := am.Value(PrefixName)
	name, err := student.ParseName(nameVal)
	if err != nil {
		return nil, err
	}
	phoneVal, _ := am.Value(PrefixPhone)
	phone, err := student.ParsePhone(phoneVal)
	if err != nil {
		return nil, err
	}
	emailVal, _ := am.Value(PrefixEmail)
	email, err := student.ParseEmail(emailVal)
	if err != nil {
		return nil, err
	}
	handleVal, _ := am.Value(PrefixHandle)
	handle, err := student.ParseHandle(handleVal)
	if err != nil {
		return nil, err
	}
	tgVal, _ := am.Value(PrefixTutorialGroup)
	tg, err := student.ParseTutorialGroup(tgVal)
	if err != nil {
		return nil, err
	}
	tags, err := student.ParseTags(am.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}

	return command.Add{Student: student.New(name, phone, email, handle, tg, tags...)}, nil
}
