package shift

import "errors"

var (
	ErrShiftTemplateNotFound   = errors.New("shift template not found")
	ErrShiftTemplateNameExists = errors.New("shift template with this name already exists")
	ErrShiftTemplateInUse      = errors.New("shift template is referenced by a recurring schedule")
)
