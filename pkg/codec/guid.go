package codec

import "github.com/google/uuid"

// SwapGUID converts a GUID between the host catalog notation and the wire
// notation by swapping bytes 0↔3, 1↔2, 4↔5 and 6↔7. Applying it twice
// returns the original value.
func SwapGUID(id uuid.UUID) uuid.UUID {
	id[0], id[3] = id[3], id[0]
	id[1], id[2] = id[2], id[1]
	id[4], id[5] = id[5], id[4]
	id[6], id[7] = id[7], id[6]
	return id
}
