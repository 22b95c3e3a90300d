package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// positionLetters maps the tens digit of a splice position to its suffix
// letter. Index 0 is a reserved placeholder: positions below 10 are never
// produced, so '0' never appears in a well-formed suffix.
const positionLetters = "0ABCDEFGHI"

const (
	minSplicePos = 10
	maxSplicePos = 99

	// suffixTerminator ends every token. It is a fixed sentinel, not base64
	// padding of anything.
	suffixTerminator = "=="
	suffixLen        = 4

	oneTimeKeyHexLen = 64

	// minTokenLen is the 4-char suffix plus the smallest ciphertext region
	// that can still contain a full 64-char key.
	minTokenLen = 68
)

// regions is the tagged decomposition of a token body: the splice position,
// the one-time key, and the two ciphertext slices around it. Both the builder
// and the parser go through this type so that the two directions stay
// symmetric by construction.
type regions struct {
	pos    int
	before string
	key    string
	after  string
}

// spliceKey inserts key into cipherStr at pos. A position beyond the end of
// cipherStr is tolerated: the whole ciphertext becomes the before slice and
// the key lands at the very end.
func spliceKey(cipherStr, key string, pos int) regions {
	if pos > len(cipherStr) {
		return regions{pos: pos, before: cipherStr, key: key}
	}

	return regions{
		pos:    pos,
		before: cipherStr[:pos],
		key:    key,
		after:  cipherStr[pos:],
	}
}

// splitToken decomposes a full token string back into its regions. It
// enforces the structural rules: minimum length, a valid position suffix,
// and a key region that fits inside the token body.
func splitToken(tok string) (regions, error) {
	if len(tok) < minTokenLen {
		return regions{}, fmt.Errorf("%w: length %d is below minimum %d", ErrMalformedToken, len(tok), minTokenLen)
	}

	pos, err := decodeSuffix(tok[len(tok)-suffixLen:])
	if err != nil {
		return regions{}, err
	}

	remainder := tok[:len(tok)-suffixLen]
	if len(remainder) < pos+oneTimeKeyHexLen {
		return regions{}, fmt.Errorf("%w: token truncated inside the key region", ErrMalformedToken)
	}

	return regions{
		pos:    pos,
		before: remainder[:pos],
		key:    remainder[pos : pos+oneTimeKeyHexLen],
		after:  remainder[pos+oneTimeKeyHexLen:],
	}, nil
}

// assemble produces the final token string: before ‖ key ‖ after ‖ suffix.
func (r regions) assemble() (string, error) {
	suffix, err := encodeSuffix(r.pos)
	if err != nil {
		return "", err
	}

	return r.before + r.key + r.after + suffix, nil
}

// cipher reconstructs the contiguous ciphertext string with the key removed.
func (r regions) cipher() string {
	return r.before + r.after
}

// randomSplicePos draws a uniform splice position in [10, 99] from the OS
// CSPRNG.
func randomSplicePos() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(maxSplicePos-minSplicePos+1))
	if err != nil {
		return 0, fmt.Errorf("generate splice position: %w", err)
	}

	return minSplicePos + int(n.Int64()), nil
}

// encodeSuffix renders a splice position as its 4-character suffix: the tens
// digit mapped through positionLetters, the ones digit as a decimal
// character, then the fixed terminator.
func encodeSuffix(pos int) (string, error) {
	if pos < minSplicePos || pos > maxSplicePos {
		return "", fmt.Errorf("splice position %d out of range [%d, %d]", pos, minSplicePos, maxSplicePos)
	}

	tens := pos / 10
	ones := pos % 10

	return string(positionLetters[tens]) + string(rune('0'+ones)) + suffixTerminator, nil
}

// decodeSuffix recovers the splice position from a 4-character position
// suffix. The letter and digit ranges bound the result to [10, 99], so any
// decoded position is automatically in range.
func decodeSuffix(suffix string) (int, error) {
	if len(suffix) != suffixLen {
		return 0, fmt.Errorf("%w: position suffix must be %d characters", ErrMalformedToken, suffixLen)
	}
	if suffix[2:] != suffixTerminator {
		return 0, fmt.Errorf("%w: position suffix is missing its %q terminator", ErrMalformedToken, suffixTerminator)
	}

	letter := suffix[0]
	if letter < 'A' || letter > 'I' {
		return 0, fmt.Errorf("%w: invalid position letter %q", ErrMalformedToken, letter)
	}

	digit := suffix[1]
	if digit < '0' || digit > '9' {
		return 0, fmt.Errorf("%w: invalid position digit %q", ErrMalformedToken, digit)
	}

	tens := int(letter-'A') + 1
	ones := int(digit - '0')

	return tens*10 + ones, nil
}
