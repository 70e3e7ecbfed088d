// Package internetobject implements a lexer and abstract-syntax parser
// for Internet Object (IO), a human-authored data-interchange format
// that resembles a comma/tilde-separated, header-plus-data dialect with
// optional schemas.
//
// Three layers run strictly leaves-first:
//
//	text ──▶ Tokenizer ──▶ []Token ──▶ AstParser ──▶ tree ──▶ schema ──▶ typed value
//
// # Comments
//
// A single-line comment starts with # and runs to end of line.
//
//	# this whole line is discarded
//	a: 1 # so is this part of the line
//
// # Strings
//
// Regular strings are quoted with " or ' and support backslash escapes:
// \b \f \n \r \t, \uXXXX (exactly 4 hex digits), \xXX (exactly 2 hex
// digits), and \<any other character>, which decodes to that character
// literally.
//
//	"a\tb"
//	'café'
//
// Raw strings are prefixed with r and copy their contents verbatim, with
// no escape interpretation:
//
//	r"a\nb"   # the two-character sequence \n, not a newline
//
// Byte strings are prefixed with b and base64-decode their contents into
// a byte sequence:
//
//	b"aGVsbG8="
//
// An unquoted run of characters is an open string; trailing whitespace
// is trimmed but interior whitespace is kept. T/true, F/false, and
// N/null are reserved open-string spellings for the boolean and null
// literals.
//
//	hello world   # one open string, "hello world"
//	true          # the boolean true, not the string "true"
//
// # Numbers
//
// Numbers are decimal, hexadecimal (0x), octal (0c), or binary (0b),
// optionally signed, with an optional fractional part and exponent on
// the decimal form:
//
//	100
//	-0x1A
//	0c17
//	0b1010
//	1.5e10
//
// # Containers
//
// Objects use { } and arrays use [ ]. A key binds to the value that
// follows its ':'; two consecutive commas insert an empty string in the
// gap between them.
//
//	{a: 1, b: [2, 3]}
//	[1, , 3]        # length 3: 1, "", 3
//
// # Sections
//
// The three-character sequence --- separates a document into
// independently-parsed sections; see ParseSections.
//
// # Schemas
//
// A Schema names an ordered sequence of typed members (MemberDef);
// ParseWithSchema tokenizes, parses, and validates/coerces a document
// against one in a single pass. Lexical and structural errors carry the
// source position; validation errors carry the member's schema path
// (MemberDef.Path) in SyntaxError.Path and no source position.
package internetobject
