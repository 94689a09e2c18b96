// Package miniyaml implements the restricted YAML dialect used for note
// frontmatter: an indentation-sensitive recursive-descent parser and a
// serializer that produces minimally-quoted, human-editable text.
//
// The dialect covers scalars (null, booleans, plain decimal numbers,
// single/double quoted and plain strings), block sequences and mappings,
// inline flow collections ([a, b] and {a: 1}), pipe block scalars, and
// folded multi-line strings. Mappings preserve insertion order so that
// editing a note's metadata does not reorder its fields.
//
// Deliberately out of scope: anchors, aliases, tags, multi-document
// streams, complex keys, and any schema awareness. Inputs that need
// those features should go through a full YAML implementation instead.
//
// The two entry points are [Parse] and [Dump]:
//
//	v, err := miniyaml.Parse("title: My Note\ntags: [a, b]")
//	if err != nil {
//		return err
//	}
//	text := miniyaml.Dump(v)
//
// Both are pure functions over their inputs. Independent documents may
// be parsed and dumped concurrently without coordination.
//
// Parse failures are reported through sentinel errors checkable with
// [errors.Is]: [ErrIndentation], [ErrScalarFormat],
// [ErrUnterminatedLiteral], and [ErrKeyFormat]. One malformed construct
// fails the whole call; there is no partial result.
package miniyaml
