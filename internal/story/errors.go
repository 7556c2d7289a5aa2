package story

import "errors"

var (
	// ErrNoProject indicates the .filter state directory is missing.
	ErrNoProject = errors.New("no filter project found")

	// ErrCorruptStructure indicates a required subdirectory is missing.
	ErrCorruptStructure = errors.New("project structure may be corrupted")

	// ErrInvalidStage indicates a stage name not present in the configuration.
	ErrInvalidStage = errors.New("invalid stage")

	// ErrStoryNotFound indicates the story file does not exist.
	ErrStoryNotFound = errors.New("story not found")
)
