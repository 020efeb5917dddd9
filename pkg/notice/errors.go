package notice

import "errors"

var (
	ErrDuplicateNotice = errors.New("notice already exists")
	ErrEmptyMessage    = errors.New("notice message is empty")
)
