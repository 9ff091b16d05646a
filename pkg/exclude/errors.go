package exclude

import "errors"

// ErrReadExcludeFile is returned when an exclude file cannot be read.
var ErrReadExcludeFile = errors.New("exclude: failed to read exclude file")
