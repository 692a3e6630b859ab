package cmd

import "errors"

var (
	ErrNoRemoteURL  = errors.New("no remote URL was given via argument, flag, or environment")
	ErrChecksFailed = errors.New("one or more checks did not pass")
)
