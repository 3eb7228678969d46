package wire

// BeforeSerializer is implemented by types generated with triggers enabled.
// Serialize calls BeforeSerialize before the first field is written and
// aborts with its error.
type BeforeSerializer interface {
	BeforeSerialize() error
}

// AfterDeserializer is implemented by types generated with triggers enabled.
// Deserialize calls AfterDeserialize once the input is exhausted and returns
// its error.
type AfterDeserializer interface {
	AfterDeserialize() error
}
