package mueller

import "strings"

// transcriptionMap maps Mueller transcription bytes to IPA symbols.
// Only bytes inside [...] spans are looked up here.
var transcriptionMap = map[byte]string{
	0x41: "\u0251", // ɑ  A
	0x44: "\u00f0", // ð  D
	0x45: "e",      // e  E
	0x49: "\u026a", // ɪ  I
	0x4E: "\u014b", // ŋ  N
	0x51: "\u00e6", // æ  Q
	0x53: "\u0283", // ʃ  S
	0x54: "\u03b8", // θ  T
	0x5A: "\u0292", // ʒ  Z
	0x65: "\u025b", // ɛ  e
	0x75: "\u028a", // ʊ  u
	0x8D: "\u0259", // ə
	0xAB: "\u025c", // ɜ
	0xC3: "\u028c", // ʌ
	0xC7: "\u2198", // ↘
	0xC8: "\u2197", // ↗
	0xF9: ":",
}

// TranslateByte returns the IPA replacement for a transcription byte.
// Bytes without a mapping come back as the code point of the same value.
func TranslateByte(b byte) string {
	if ipa, ok := transcriptionMap[b]; ok {
		return ipa
	}
	return string(rune(b))
}

// TranscriptionToIPA converts a raw transcription span byte by byte.
func TranscriptionToIPA(span []byte) string {
	var sb strings.Builder
	sb.Grow(len(span) * 2)
	for _, c := range span {
		sb.WriteString(TranslateByte(c))
	}
	return sb.String()
}
