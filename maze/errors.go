package maze

import "errors"

// Generation errors. Both are fatal for the run that produced them.
var (
	// ErrConsistency is returned when two determined wall slots of the same edge disagree.
	ErrConsistency = errors.New("inconsistent walls")
	// ErrInvalidConfiguration is returned for an unknown build policy, direction or out of range setting.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
