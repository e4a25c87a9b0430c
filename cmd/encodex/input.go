package main

import (
	"io"
	"os"
)

type input struct {
	name string
	data []byte
}

// readInputs loads each named file fully into memory. With no arguments it
// drains stdin instead. The codec wants whole buffers here; the streaming
// API exists for callers that cannot afford that.
func readInputs(args []string) ([]input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []input{{name: "stdin", data: data}}, nil
	}

	inputs := make([]input, 0, len(args))
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: name, data: data})
	}

	return inputs, nil
}
