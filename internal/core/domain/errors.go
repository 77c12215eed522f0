package domain

import "go.trai.ch/zerr"

var (
	// ErrNoTarget is returned when a dependency listing contains no target rule.
	ErrNoTarget = zerr.New("dependency listing has no target rule")

	// ErrEmptyTargetName is returned when the target identifier is empty.
	ErrEmptyTargetName = zerr.New("target name is empty")

	// ErrNotDepFile is returned when a batch input does not carry the expected
	// dependency-listing file extension.
	ErrNotDepFile = zerr.New("not a dependency listing file")
)
