package archive

// NoOpCodec passes document bytes through unchanged. Useful as a uniform
// Codec value when compression is configured but happens to be disabled.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
