// Package codec converts byte data to and from printable text.
//
// Two representations of byte data are used throughout:
//
//   - A Latin1 string is a Go string whose runes all lie in U+0000..U+00FF.
//     Rune i of the string is byte i of the data.
//   - A byte slice, related to the Latin1 string by [Latin1ToBytes] and
//     [BytesToLatin1].
//
// Encoders take a string and a utf8Encode flag. When the flag is set the
// input may hold any Unicode text and is first converted with [UTF8Encode].
// Otherwise every rune must fit in a byte or [ErrCodePointRange] is returned.
// Decoders mirror this with a utf8Decode flag that applies [UTF8Decode]
// to the decoded Latin1 string.
//
// Every function is pure and safe for concurrent use. The empty string
// always encodes and decodes to the empty string.
//
// Codecs are also available by name through [Lookup], which is how the
// transfer encodings of the parent package select them.
package codec
