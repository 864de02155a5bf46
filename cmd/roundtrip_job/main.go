package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xiaocenxiaocen/huffmantree/pkg/huffapi"
)

// 사용법: roundtrip_job <server-url> <file>
func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: roundtrip_job <server-url> <file>")
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[2])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	c := huffapi.New(os.Args[1])
	info, err := c.Compress(data)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("blob %s: %d bytes -> %d bytes (%d bits, ratio %.3f)\n",
		info.ID, info.Stats.InputBytes, info.Stats.PackedBytes, info.Bits, info.Stats.Ratio)

	raw, err := c.Raw(info.ID)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if !bytes.Equal(raw, data) {
		fmt.Println("round trip mismatch")
		os.Exit(1)
	}
	fmt.Println("round trip ok")
}
