package parser

import (
	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/command"
	"github.com/trezcool/roster/core/student"
)

// ParseEdit parses `INDEX [n/NAME] [p/PHONE] [e/EMAIL] [u/HANDLE] [tg/GROUP] [t/TAG]...`.
// A single empty t/ clears the tags.
func ParseEdit(args string) (command.Command, error) {
	am := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixHandle, PrefixTutorialGroup, PrefixTag)

	if am.Preamble() == "" {
		return nil, withUsage(core.KindEmptyIndex, command.MsgMissingIndex, command.EditUsage)
	}
	if err := am.VerifyNoDuplicatePrefixesFor(PrefixName, PrefixPhone, PrefixEmail, PrefixHandle, PrefixTutorialGroup); err != nil {
		return nil, err
	}
	index, err := student.ParseIndex(am.Preamble())
	if err != nil {
		return nil, err
	}

	var desc command.EditDescriptor
	if v, ok := am.Value(PrefixName); ok {
		name, err := student.ParseName(v)
		if err != nil {
			return nil, err
		}
		desc.Name = &name
	}
	if v, ok := am.Value(PrefixPhone); ok {
		phone, err := student.ParsePhone(v)
		if err != nil {
			return nil, err
		}
		desc.Phone = &phone
	}
	if v, ok := am.Value(PrefixEmail); ok {
		email, err := student.ParseEmail(v)
		if err != nil {
			return nil, err
		}
		desc.Email = &email
	}
	if v, ok := am.Value(PrefixHandle); ok {
		handle, err := student.ParseHandle(v)
		if err != nil {
			return nil, err
		}
		desc.Handle = &handle
	}
	if v, ok := am.Value(PrefixTutorialGroup); ok {
		tg, err := student.ParseTutorialGroup(v)
		if err != nil {
			return nil, err
		}
		desc.TutorialGroup = &tg
	}
	if am.Has(PrefixTag) {
		raws := am.AllValues(PrefixTag)
		var tags []student.Tag
		if len(raws) != 1 || raws[0] != "" {
			if tags, err = student.ParseTags(raws); err != nil {
				return nil, err
			}
		}
		desc.Tags = &tags
	}

	if !desc.IsAnyFieldEdited() {
		return nil, core.NewCommandError(core.KindMissingFields, command.MsgEditNoField)
	}
	return command.Edit{Index: index, Descriptor: desc}, nil
}

// ParseDelete parses `INDEX`.
func ParseDelete(args string) (command.Command, error) {
	index, err := student.ParseIndex(args)
	if err != nil {
		return nil, command.InvalidFormat(command.DeleteUsage)
	}
	return command.Delete{Index: index}, nil
}
