// Package web hosts the Snake game in a browser. Each websocket
// connection runs its own game; the server records the game's surface
// calls and streams them as msgpack frames that the page replays on a
// canvas. Key presses come back as text messages carrying DOM key names.
package web

import (
	"github.com/vmihailenco/msgpack/v5"
)

// OpCode identifies a recorded surface call.
type OpCode uint8

const (
	OpSize     OpCode = iota + 1 // Args: width, height
	OpFill                       // Str: CSS color
	OpFont                       // Str: CSS font
	OpBaseline                   // Str: top, middle or bottom
	OpRect                       // Args: x, y, w, h
	OpText                       // Args: x, y; Str: text
)

func (c OpCode) String() string {
	switch c {
	case OpSize:
		return "size"
	case OpFill:
		return "fill"
	case OpFont:
		return "font"
	case OpBaseline:
		return "baseline"
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one canvas call.
type Op struct {
	Code OpCode `msgpack:"c"`
	Args []int  `msgpack:"a,omitempty"`
	Str  string `msgpack:"s,omitempty"`
}

// Frame is everything needed to paint one game frame.
type Frame struct {
	State string `msgpack:"st"`
	Score int    `msgpack:"sc"`
	Ops   []Op   `msgpack:"o"`
}

// EncodeFrame serializes f for the wire.
func EncodeFrame(f *Frame) ([]byte, error) {
	return msgpack.Marshal(f)
}

// DecodeFrame parses a frame produced by EncodeFrame.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	err := msgpack.Unmarshal(data, &f)
	return f, err
}
