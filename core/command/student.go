package command

import (
	"fmt"

	"github.com/trezcool/roster/core"
	"github.com/trezcool/roster/core/student"
)

const (
	AddKeyword    = "add"
	EditKeyword   = "edit"
	DeleteKeyword = "delete"

	AddUsage = AddKeyword + ": Adds a student to the roster. " +
		"Parameters: n/NAME p/PHONE e/EMAIL u/HANDLE [tg/TUTORIAL_GROUP] [t/TAG]...\n" +
		"Example: " + AddKeyword + " n/John Doe p/98765432 e/johnd@example.com u/@johndoe tg/TG1 t/friends"
	EditUsage = EditKeyword + ": Edits the details of the student identified by the index number used in the displayed student list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [u/HANDLE] [tg/TUTORIAL_GROUP] [t/TAG]...\n" +
		"Example: " + EditKeyword + " 1 p/91234567 e/johndoe@example.com"
	DeleteUsage = DeleteKeyword + ": Deletes the student identified by the index number used in the displayed student list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: " + DeleteKeyword + " 1"

	MsgAddSuccess    = "New student added: %s"
	MsgEditSuccess   = "Edited Student: %s"
	MsgEditNoField   = "At least one field to edit must be provided."
	MsgDeleteSuccess = "Deleted Student: %s"
)

// Add adds a new student.
type Add struct {
	Student student.Student
}

func (cmd Add) Execute(m Model) (Result, error) {
	if m.Has(cmd.Student) {
		return Result{}, core.NewCommandError(core.KindDuplicateRecord, MsgDuplicateStudent)
	}
	if err := m.Add(cmd.Student); err != nil {
		if err == student.ErrDuplicate {
			return Result{}, core.NewCommandError(core.KindDuplicateRecord, MsgDuplicateStudent)
		}
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MsgAddSuccess, student.Format(cmd.Student))), nil
}

// EditDescriptor holds the fields to change. nil fields are left untouched.
type EditDescriptor struct {
	Name          *student.Name
	Phone         *student.Phone
	Email         *student.Email
	Handle        *student.Handle
	TutorialGroup *student.TutorialGroup
	Tags          *[]student.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Handle != nil || d.TutorialGroup != nil || d.Tags != nil
}

// Apply returns a copy of s with the descriptor's fields. Grades and attendance are kept.
func (d EditDescriptor) Apply(s student.Student) student.Student {
	if d.Name != nil {
		s.Name = *d.Name
	}
	if d.Phone != nil {
		s.Phone = *d.Phone
	}
	if d.Email != nil {
		s.Email = *d.Email
	}
	if d.Handle != nil {
		s.Handle = *d.Handle
	}
	if d.TutorialGroup != nil {
		s.TutorialGroup = *d.TutorialGroup
	}
	if d.Tags != nil {
		return s.WithTags(*d.Tags...)
	}
	return s.WithTags(s.Tags...)
}

// Edit edits the displayed student at Index.
type Edit struct {
	Index      int
	Descriptor EditDescriptor
}

func (cmd Edit) Execute(m Model) (Result, error) {
	target, err := resolve(m, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	edited := cmd.Descriptor.Apply(target)
	if err := set(m, target, edited); err != nil {
		return Result{}, err
	}
	m.ShowAll()
	return NewResult(fmt.Sprintf(MsgEditSuccess, student.Format(edited))), nil
}

// Delete removes the displayed student at Index.
type Delete struct {
	Index int
}

func (cmd Delete) Execute(m Model) (Result, error) {
	target, err := resolve(m, cmd.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.Delete(target); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf(MsgDeleteSuccess, student.Format(target))), nil
}
