package content

import "math/rand"

// codeAlphabet is the character set for shareable codes: uppercase letters
// and digits, 36^6 possible codes at the fixed length.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the fixed length of a shareable message code.
const CodeLength = 6

// GenerateCode draws one candidate code uniformly from the alphabet.
// Uniqueness against persisted codes is the caller's responsibility.
// Parameters:
//   - rnd: random source to draw from.
// Returns:
//   - string: a CodeLength-character uppercase alphanumeric code.
func GenerateCode(rnd *rand.Rand) string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeAlphabet[rnd.Intn(len(codeAlphabet))]
	}
	return string(b)
}
