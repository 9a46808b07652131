package registry

import (
	"github.com/msto63/pkit/utils/mapx"
	"github.com/msto63/pkit/utils/stringx"
)

// Options supplies the defaults the built-in methods fall back to
type Options struct {
	TruncateSuffix string             // suffix used by truncate without an explicit one
	ArrayStrategy  mapx.ArrayStrategy // strategy used by merge without an explicit one
	SortAscending  bool               // direction used by sortByKey/sortByKeyName without one
}

// DefaultOptions returns the options used when none are given
func DefaultOptions() Options {
	return Options{
		TruncateSuffix: stringx.DefaultTruncateSuffix,
		ArrayStrategy:  mapx.ArrayConcat,
		SortAscending:  true,
	}
}

// Builtins builds fresh copies of the built-in tables
func Builtins(opts Options) []*Table {
	return []*Table{
		stringTable(opts),
		numberTable(),
		arrayTable(opts),
		objectTable(opts),
		mathTable(),
		pathTable(),
	}
}
