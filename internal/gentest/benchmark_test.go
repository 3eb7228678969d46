package gentest

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/dynamicpb"
)

const benchmarkPerson = `
	name: "Grace Hopper"
	id: 1906
	email: "grace@example.com"
	phones { number: "555-0100" type: WORK }
	phones { number: "555-0101" type: MOBILE }
	phones { number: "555-0102" }
	created { seconds: 1640995200 }
`

func BenchmarkPerson_Unmarshal(b *testing.B) {
	_, payload := referenceEncode(b, "Person", benchmarkPerson)
	b.ReportMetric(float64(len(payload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := UnmarshalPerson(payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPerson_Unmarshal_DynamicPB(b *testing.B) {
	msg, payload := referenceEncode(b, "Person", benchmarkPerson)
	md := msg.Descriptor()
	b.ReportMetric(float64(len(payload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := proto.Unmarshal(payload, dynamicpb.NewMessage(md)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPerson_Marshal(b *testing.B) {
	_, payload := referenceEncode(b, "Person", benchmarkPerson)
	p, err := UnmarshalPerson(payload)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := p.Marshal(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPerson_Marshal_DynamicPB(b *testing.B) {
	msg, _ := referenceEncode(b, "Person", benchmarkPerson)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := proto.Marshal(msg); err != nil {
			b.Fatal(err)
		}
	}
}
