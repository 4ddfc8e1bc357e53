// Package tileutil provides small formatting and collection helpers for
// terminal-oriented window management tools.
//
// The package has no internal state and no I/O: every function is a pure
// computation over the values it is given. The two non-trivial pieces are
// the grouped table formatter and the type-partitioned map.
//
// # Tables
//
// [FormatTable] renders string rows as an aligned plain-text table with a
// dashed divider under the header line:
//
//	out := tileutil.FormatTable(
//		[][]string{{"a", "1"}, {"b", "2"}},
//		[]string{"Name", "Val"},
//	)
//
// [FormatGroupedTable] additionally buckets rows by one column: the column
// is removed from the output and its values become group labels, printed
// in ascending order with each group's rows beneath. [FormatMapTable]
// accepts a map instead of rows and renders it as key/value rows sorted by
// key. Rows may be narrower than the header set; missing trailing cells
// are simply not rendered.
//
// A table can also be described declaratively and decoded from YAML with
// [ParseTableYAML], which is convenient when tables are driven by config:
//
//	headers: [Name, Val]
//	rows:
//	  - [a, "1"]
//	  - [b, "2"]
//
// # Type-Partitioned Map
//
// [TypeMap] is an associative container whose entries are partitioned by
// each key's dynamic type. Keys of different types are never compared to
// one another, which makes it safe to mix look-alike enumerated types
// (say, two distinct int-based constant sets) in one container without
// any risk of cross-type collisions:
//
//	m := tileutil.NewTypeMap[string]()
//	m.Set(CmdLeft, "move left")   // one partition per key type
//	m.Set(DirLeft, "left edge")   // never compared against CmdLeft
//
// Note that [TypeMap.Len] counts key types, not entries; see its doc.
//
// # Indexes and Subsets
//
// [ClampIndex] forces a 0-based index into a half-open range, either
// wrapping (negative indexes count from the end) or saturating.
// [Powerset] and [Combinations] lazily enumerate subsets as restartable
// [iter.Seq] sequences.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrKeyNotFound] — [TypeMap.Get] or [TypeMap.Delete] on an absent key
//   - [ErrInvalidTable] — undecodable YAML table description
//
// [DisplayInitError] signals that the display connection failed to come
// up for reasons outside this program's control.
package tileutil
