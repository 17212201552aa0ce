package markup

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"heroslider/internal/dom"
)

// StateAttr carries the encoded slider state on the host element
const StateAttr = "data-state"

// ErrInvalidState is returned when an encoded state cannot be decoded
var ErrInvalidState = errors.New("invalid slider state")

// State is the slider state embedded in a snapshot so a page script can
// resume where the snapshot left off
type State struct {
	Index    int  `msgpack:"i"`
	Count    int  `msgpack:"n"`
	Paused   bool `msgpack:"p"`
	AutoPlay bool `msgpack:"a"`
}

// EncodeState packs st as base64url msgpack
func EncodeState(st State) (string, error) {
	packed, err := msgpack.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// DecodeState reverses EncodeState
func DecodeState(encoded string) (State, error) {
	var st State
	packed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return st, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if err := msgpack.Unmarshal(packed, &st); err != nil {
		return st, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	if st.Count < 0 || (st.Count > 0 && (st.Index < 0 || st.Index >= st.Count)) {
		return st, fmt.Errorf("%w: index %d out of range for %d slides", ErrInvalidState, st.Index, st.Count)
	}
	return st, nil
}

// Stamp encodes st onto the host element
func Stamp(host *dom.Node, st State) error {
	encoded, err := EncodeState(st)
	if err != nil {
		return err
	}
	host.SetAttr(StateAttr, encoded)
	return nil
}
