// Package codec maps font styles and 24-bit colors to ANSI/VT escape
// fragments.
//
// Styles are bit flags. Only eight flag sets have a mapping:
//
//	Bold, Underline, Reverse, Normal,
//	Bold|Underline, Bold|Reverse, Reverse|Underline,
//	Bold|Reverse|Underline
//
// StyleOn returns the "set attribute" fragments for a flag set and StyleOff
// the matching "unset attribute" fragments (Bold 1/22, Underline 4/24,
// Reverse 7/27, Normal 0/0). Any other flag set is rejected with an
// UNSUPPORTED_STYLE error; nothing is coerced to a nearby combination.
//
// ColorOn renders ESC[38;2;R;G;Bm for foregrounds and ESC[48;2;R;G;Bm for
// backgrounds. Unspecified styles and colors render as the empty string, so
// callers can concatenate fragments unconditionally.
package codec
