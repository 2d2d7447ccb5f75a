package service

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Sentinel errors handlers translate into HTTP statuses. Database-level
// duplicates surface as gorm.ErrDuplicatedKey and not-found reads as
// gorm.ErrRecordNotFound; these cover the rules the database can't express.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBanned             = errors.New("account banned")
	ErrSelfAction         = errors.New("cannot perform this action on your own account")
	ErrEmailRequired      = errors.New("email required for guests")
	ErrFileMissing        = errors.New("file not found on server")
)
