package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	huffman "github.com/chronos-tachyon/texthuffman"
)

const defaultText = "the quick brown fox jumps over the lazy dog."

func main() {
	log.SetFlags(0)
	log.SetPrefix("huffman: ")

	var (
		text     = flag.String("text", "", "text to encode; read from stdin when \"-\"")
		asJSON   = flag.Bool("json", false, "print the code table as JSON")
		dumpTree = flag.Bool("dump-tree", false, "print the Huffman tree")
	)
	flag.Parse()

	input := *text
	switch input {
	case "":
		input = defaultText
	case "-":
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("reading stdin: %v", err)
		}
		input = strings.TrimSuffix(string(raw), "\n")
	}

	c, err := huffman.New(input)
	if err != nil {
		log.Fatal(err)
	}

	if *dumpTree {
		if _, err := huffman.DumpTree(os.Stdout, c.Root()); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Code table:")
	if *asJSON {
		stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(os.Stdout)
		stream.WriteVal(c.CodeTable())
		stream.WriteRaw("\n")
		if err := stream.Flush(); err != nil {
			log.Fatal(err)
		}
		jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)
	} else if _, err := c.CodeTable().Dump(os.Stdout); err != nil {
		log.Fatal(err)
	}

	bits, err := c.Encode(input)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Encoded text:")
	fmt.Println(bits)

	decoded, err := c.Decode(bits)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Decoded text:")
	fmt.Println(decoded)

	fmt.Printf("%v, %.3f bits/symbol\n", c, c.CodeTable().AverageLength(c.Frequencies()))
}
