package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

const (
	prompt       = "Enter command (SET key value / GET key / EXIT): "
	exitKeyword  = "EXIT"
	emptyMessage = "Command cannot be empty. Please enter a valid command."
)

// Client is a single connection to a kv server speaking the line protocol.
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

func Dial(addr string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

// Do sends line as one command and returns the server's response line
// without its terminator.
func (c *Client) Do(line string) (string, error) {
	if _, err := io.WriteString(c.conn, line+"\n"); err != nil {
		return "", fmt.Errorf("send command: %w", err)
	}
	response, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return strings.TrimSuffix(response, "\n"), nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// RunConsole forwards operator lines from in to the server and prints each
// response to out. EXIT (any case) or the end of in stops the loop; the
// keyword itself is never sent.
func RunConsole(in io.Reader, out io.Writer, c *Client) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		atEOF := err != nil
		if line == "" && atEOF {
			fmt.Fprintln(out)
			return nil
		}
		command := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if strings.EqualFold(strings.TrimSpace(command), exitKeyword) {
			return nil
		}
		if strings.TrimSpace(command) == "" {
			fmt.Fprintln(out, emptyMessage)
			continue
		}

		response, err := c.Do(command)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Server: %s\n", response)
		if atEOF {
			return nil
		}
	}
}
