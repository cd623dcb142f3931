package deckgen

import "unicode/utf16"

// layoutVariant picks a layout variant index in [0, maxVariants) as a pure
// function of content. The hash is the classic `h = (h<<5) - h + c` string
// hash evaluated in 32-bit signed arithmetic over the UTF-16 code units of
// title plus the first 100 code units of body, so identical content always
// resolves to the identical variant regardless of slide position.
func layoutVariant(title, body string, maxVariants int) int {
	if maxVariants <= 1 {
		return 0
	}
	units := utf16.Encode([]rune(body))
	if len(units) > 100 {
		units = units[:100]
	}
	var h int32
	for _, u := range utf16.Encode([]rune(title)) {
		h = h<<5 - h + int32(u)
	}
	for _, u := range units {
		h = h<<5 - h + int32(u)
	}
	a := int64(h)
	if a < 0 {
		a = -a
	}
	return int(a % int64(maxVariants))
}
