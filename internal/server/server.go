package server

import (
	"bufio"
	"errors"
	"io"
	"log"
	"net"

	"kv-go/internal/protocol"
)

// HandleConnection serves one client until it disconnects or an I/O error
// occurs. Commands are answered strictly in order, one response line each.
func HandleConnection(connection net.Conn, kv protocol.Store) {
	defer connection.Close()
	remote := connection.RemoteAddr().String()
	log.Printf("client connected on: %s\n", remote)

	reader := bufio.NewReader(connection)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			log.Printf("client %s read error: %v", remote, err)
			return
		}
		// A final line without a terminator is still a command.
		if line != "" {
			if werr := dispatch(connection, line, kv); werr != nil {
				log.Printf("client %s write error: %v", remote, werr)
				return
			}
		}
		if err != nil {
			log.Printf("client %s disconnected", remote)
			return
		}
	}
}

func dispatch(w io.Writer, line string, kv protocol.Store) error {
	response := protocol.Execute(protocol.Parse(line), kv)
	_, err := io.WriteString(w, response+"\n")
	return err
}
