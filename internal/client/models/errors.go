package models

import "errors"

var ErrInvalidStatus = errors.New("invalid status")
