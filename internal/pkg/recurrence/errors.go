package recurrence

import "errors"

var ErrEmptyDaySet = errors.New("recurrence requires at least one weekday")
