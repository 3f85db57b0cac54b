// Package str provides string helpers in the spirit of Laravel's Str
// facade: word segmentation, case conversion, rune-aware slicing and random
// string generation.
//
// # Word segmentation
//
// [Words] splits a string into words on separators, camel-case humps, digit
// runs and acronym boundaries. Every case converter is built on it:
//
//	str.Words("Int8Value")        // → ["Int" "8" "Value"]
//	str.CamelCase("Int8Value")    // → "int8Value"
//	str.SnakeCase("HTTPRequest")  // → "http_request"
//	str.KebabCase("foo_bar baz")  // → "foo-bar-baz"
//	str.PascalCase("hello world") // → "HelloWorld"
//
// # Runes, not bytes
//
// Lengths and offsets ([CharLength], [Substring], [Ellipsis], [ChunkString])
// count runes, so multi-byte text is never cut in the middle of a character.
package str
