package encode

type Option func(*EncState)

// Indent sets the mapping-level indent (default 2).
func Indent(n int) Option {
	return func(es *EncState) { es.indent = n }
}

// SequenceIndent sets the sequence-level indent, the column of a sequence
// item's content relative to its parent (default 4).
func SequenceIndent(n int) Option {
	return func(es *EncState) { es.seqIndent = n }
}

// SequenceOffset sets the dash position within the sequence indent
// (default 2). Must be smaller than the sequence indent.
func SequenceOffset(n int) Option {
	return func(es *EncState) { es.seqOffset = n }
}

func EncodeColors(c *Colors) Option {
	return func(es *EncState) { es.Color = c.Color }
}
