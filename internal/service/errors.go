package service

import "errors"

var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrTabIndexOutOfRange  = errors.New("tab index out of range")
	ErrSameGroup           = errors.New("source and target group are the same")
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrContainerNotFound = errors.New("container not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
