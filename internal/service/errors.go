package service

import "errors"

var (
	ErrNoPathsProvided  = errors.New("no asset paths provided")
	ErrTooManyPaths     = errors.New("too many asset paths in one batch")
	ErrTooManyChecksums = errors.New("too many story checksums in delta request")

	ErrInvalidAssetToken  = errors.New("invalid asset token")
	ErrUnknownURLStrategy = errors.New("unknown asset url strategy")
)
