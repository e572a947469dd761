package primitives

import (
	"encoding/hex"
	"fmt"
)

// HexBytes renders a byte slice as a quoted "0x..." hex string in JSON,
// the same convention the teacher's types.HexBytes uses for on-disk proof
// fixtures, adapted here for prover-state debug/test dumps (spec §6).
type HexBytes []byte

func (b HexBytes) String() string {
	return hex.EncodeToString(b)
}

func (b HexBytes) MarshalJSON() ([]byte, error) {
	s := `"0x` + hex.EncodeToString(b) + `"`
	return []byte(s), nil
}

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("primitives: invalid hex string %s", data)
	}
	s := string(data[1 : len(data)-1])
	if len(s) >= 2 && s[0:2] == "0x" {
		s = s[2:]
	}
	out, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("primitives: decode hex string: %w", err)
	}
	*b = out
	return nil
}
