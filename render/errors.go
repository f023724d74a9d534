package render

import "errors"

// ErrEmptyGrid reports a magnitude grid with no cells or ragged rows.
var ErrEmptyGrid = errors.New("render: magnitude grid is empty or ragged")
