package protocol

import (
	"strings"
)

// Response lines. Each is written followed by a single '\n'.
const (
	OK             = "OK"
	NotFound       = "NOT_FOUND"
	InvalidCommand = "INVALID_COMMAND"
)

type Op int

const (
	OpInvalid Op = iota
	OpSet
	OpGet
)

func (op Op) String() string {
	switch op {
	case OpSet:
		return "SET"
	case OpGet:
		return "GET"
	}
	return "INVALID"
}

type Command struct {
	Op    Op
	Key   string
	Value string
}

// Store is the subset of the key-value store a command needs.
type Store interface {
	Set(key, value string)
	Get(key string) (string, bool)
}

// Tokenize splits a line on single spaces. The line terminator ("\n" or
// "\r\n") is removed first and trailing empty tokens are dropped, so
// "SET a b " has three tokens but "SET a  b" has four. An empty line has
// no tokens.
func Tokenize(line string) []string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	tokens := strings.Split(line, " ")
	end := len(tokens)
	for end > 0 && tokens[end-1] == "" {
		end--
	}
	return tokens[:end]
}

// Parse turns one input line into a Command. Verbs are case-sensitive and
// a wrong token count for a known verb is OpInvalid.
func Parse(line string) Command {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Command{Op: OpInvalid}
	}

	switch tokens[0] {
	case "SET":
		if len(tokens) == 3 {
			return Command{Op: OpSet, Key: tokens[1], Value: tokens[2]}
		}
	case "GET":
		if len(tokens) == 2 {
			return Command{Op: OpGet, Key: tokens[1]}
		}
	}
	return Command{Op: OpInvalid}
}

// Execute applies cmd to kv and returns the response line without its
// terminator.
func Execute(cmd Command, kv Store) string {
	switch cmd.Op {
	case OpSet:
		kv.Set(cmd.Key, cmd.Value)
		return OK
	case OpGet:
		if value, exists := kv.Get(cmd.Key); exists {
			return value
		}
		return NotFound
	default:
		return InvalidCommand
	}
}
