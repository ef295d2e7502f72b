package ports

import (
	"io"

	"goscrub/domain/dataset"
)

// DatasetReader supplies the core with parsed datasets. Implementations
// own file parsing, encodings, and size limits; the core only sees
// columns and rows.
type DatasetReader interface {
	Read(name string, r io.Reader) (*dataset.Dataset, error)
}
