package main

import (
	"flag"
	"fmt"
	"os"

	"kv-go/internal/client"
)

var addr = flag.String("addr", "127.0.0.1:8080", "Server host and port")

func main() {
	flag.Parse()

	c, err := client.Dial(*addr)
	if err != nil {
		fmt.Println("Client error:", err)
		os.Exit(1)
	}
	defer c.Close()
	fmt.Println("Connected to the server at", *addr)

	if err := client.RunConsole(os.Stdin, os.Stdout, c); err != nil {
		fmt.Println("Client error:", err)
	}
}
