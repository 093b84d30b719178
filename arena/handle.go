package arena

import "strconv"

// Handle references a record in an Arena.
// The low 32 bits hold the slot index plus one, the high 32 bits the slot generation.
type Handle uint64

// None references no record. It is the zero Handle.
const None Handle = 0

func makeHandle(idx, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx+1))
}

func (h Handle) index() uint32 {
	return uint32(h) - 1
}

func (h Handle) gen() uint32 {
	return uint32(h >> 32)
}

// String formats h as #index.generation.
func (h Handle) String() string {
	if h == None {
		return "none"
	}

	return "#" + strconv.FormatUint(uint64(h.index()), 10) + "." + strconv.FormatUint(uint64(h.gen()), 10)
}
