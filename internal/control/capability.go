package control

import (
	"context"

	"github.com/nfarrant/obs-chat-core/internal/obsws"
)

// audioCapability is the bit in an input kind's capability bitmask that
// marks the input as audio-capable.
const audioCapability = 1 << 1

// SupportsAudio reports whether a capability bitmask marks an input as
// audio-capable. Pure function of the bitmask.
func SupportsAudio(caps uint64) bool {
	return caps&audioCapability != 0
}

// LookupInput finds an input by exact name in the live input list.
// found is false when no input carries that name.
func (c *Controller) LookupInput(ctx context.Context, name string) (info obsws.InputInfo, found bool, err error) {
	inputs, err := c.gw.InputList(ctx)
	if err != nil {
		return obsws.InputInfo{}, false, err
	}
	for _, in := range inputs {
		if in.Name == name {
			return in, true, nil
		}
	}
	return obsws.InputInfo{}, false, nil
}

// InputNames returns the names of all inputs, in server order.
func (c *Controller) InputNames(ctx context.Context) ([]string, error) {
	inputs, err := c.gw.InputList(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, in.Name)
	}
	return names, nil
}
