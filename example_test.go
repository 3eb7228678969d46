package protoserial_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/anirudhraja/protoserial"
)

func ExampleProtoserial() {
	dir, err := os.MkdirTemp("", "protoserial")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	schemaText := `syntax = "proto2";
package shop;

option go_package = "example.com/shop;shop";

message Order {
  required int64 id = 1;
  repeated string items = 2;
}
`
	if err := os.WriteFile(filepath.Join(dir, "order.proto"), []byte(schemaText), 0o644); err != nil {
		log.Fatal(err)
	}

	ps := protoserial.New([]string{dir})
	if err := ps.LoadSchemaFromFile("order.proto"); err != nil {
		log.Fatal(err)
	}
	files, err := ps.Generate()
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		fmt.Println(f.Name, f.GoImportPath)
		for _, line := range strings.Split(string(f.Content), "\n") {
			if strings.HasPrefix(line, "func ") {
				fmt.Println(line)
			}
		}
	}
	// Output:
	// order.serial.go example.com/shop
	// func DeserializeOrder(r wire.Stream) (*Order, error) {
	// func UnmarshalOrder(buf []byte) (*Order, error) {
	// func (m *Order) Unmarshal(buf []byte) error {
	// func (m *Order) Marshal() ([]byte, error) {
	// func (m *Order) Deserialize(r wire.Stream) error {
	// func (m *Order) Serialize(w io.Writer) error {
}
