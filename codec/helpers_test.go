package codec

// allBytes is a Latin1 string holding every byte value 0x00..0xFF once.
func allBytes() string {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}

	return BytesToLatin1(b)
}

var unicodeSamples = []string{
	"café",
	"日本語",
	"emoji 😀 and 🇬🇧",
	"mixed \\ \"quotes\" 'and' `ticks` ~ tildes",
	"tab\tnew\nline\rcr",
}
