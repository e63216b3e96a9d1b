// Package protocol defines the JSON message shapes exchanged with the remote
// rendering device. The transport loop itself lives outside this module; only
// the message encoding is owned here.
package protocol

import (
	"fmt"

	json "github.com/goccy/go-json"
	popupkit "github.com/spikehq/popupkit"
)

// Message type tags.
const (
	TypeShowPopup  = "show_popup"
	TypeClosePopup = "close_popup"
	TypePing       = "ping"
	TypePong       = "pong"
	TypeReady      = "ready"
	TypeResult     = "result"
)

// Message is one protocol frame. Exactly one payload is populated, selected
// by Type.
type Message struct {
	Type string `json:"type"`

	// show_popup
	ID         string                    `json:"id,omitempty"`
	Definition *popupkit.PopupDefinition `json:"definition,omitempty"`
	TimeoutMS  int64                     `json:"timeout_ms,omitempty"`

	// ready
	DeviceName string `json:"device_name,omitempty"`

	// result
	Result *popupkit.PopupResult `json:"result,omitempty"`
}

// ShowPopup builds a request to display a definition under the given request
// id. A zero timeout means the device's default.
func ShowPopup(id string, def *popupkit.PopupDefinition, timeoutMS int64) Message {
	return Message{Type: TypeShowPopup, ID: id, Definition: def, TimeoutMS: timeoutMS}
}

// ClosePopup builds a request to dismiss an outstanding popup.
func ClosePopup(id string) Message {
	return Message{Type: TypeClosePopup, ID: id}
}

// Ping builds a keepalive frame.
func Ping() Message { return Message{Type: TypePing} }

// Pong builds a keepalive reply.
func Pong() Message { return Message{Type: TypePong} }

// Ready builds the device announcement frame.
func Ready(deviceName string) Message {
	return Message{Type: TypeReady, DeviceName: deviceName}
}

// Result builds the terminal frame carrying a popup's outcome.
func Result(id string, res popupkit.PopupResult) Message {
	return Message{Type: TypeResult, ID: id, Result: &res}
}

// Encode renders a frame as JSON.
func Encode(m Message) ([]byte, error) {
	if m.Type == "" {
		return nil, popupkit.AppendIssues(nil, popupkit.IssueAt("/type", popupkit.CodeMissingRequiredField, "message needs a type tag"))
	}
	return json.Marshal(m)
}

// Decode parses a frame, rejecting unknown type tags.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, popupkit.AppendIssues(nil, popupkit.Issue{Code: popupkit.CodeMalformedInput, Message: "invalid protocol frame", Cause: err, Offset: -1})
	}
	switch m.Type {
	case TypeShowPopup, TypeClosePopup, TypePing, TypePong, TypeReady, TypeResult:
		return m, nil
	case "":
		return Message{}, popupkit.AppendIssues(nil, popupkit.IssueAt("/type", popupkit.CodeMissingRequiredField, "message needs a type tag"))
	default:
		return Message{}, popupkit.AppendIssues(nil, popupkit.IssueAt("/type", popupkit.CodeMalformedInput, fmt.Sprintf("unknown message type %q", m.Type)))
	}
}
