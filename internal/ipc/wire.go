package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/domain/entity"
)

// FrameKind tags a WebSocket frame.
type FrameKind string

const (
	FrameInvoke         FrameKind = "invoke"
	FrameSend           FrameKind = "send"
	FrameNavigate       FrameKind = "navigate"
	FrameFocus          FrameKind = "focus"
	FrameBlur           FrameKind = "blur"
	FrameReply          FrameKind = "reply"
	FrameNavigateResult FrameKind = "navigate-result"
	FrameEvent          FrameKind = "event"
)

// InboundFrame is a front-end -> host frame.
type InboundFrame struct {
	Kind    FrameKind         `json:"kind" jsonschema:"required,enum=invoke,enum=send,enum=navigate,enum=focus,enum=blur"`
	ID      string            `json:"id,omitempty"`
	Channel Channel           `json:"channel,omitempty"`
	Args    []json.RawMessage `json:"args,omitempty"`
	URL     string            `json:"url,omitempty"`
}

// OutboundFrame is a host -> front-end frame.
type OutboundFrame struct {
	Kind      FrameKind `json:"kind" jsonschema:"required,enum=reply,enum=navigate-result,enum=event"`
	ID        string    `json:"id,omitempty"`
	Channel   Channel   `json:"channel,omitempty"`
	OK        *bool     `json:"ok,omitempty"`
	Result    any       `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	Cancelled *bool     `json:"cancelled,omitempty"`
	Args      []any     `json:"args,omitempty"`
}

// Request converts an invoke or send frame into a router request.
func (f InboundFrame) Request(sender port.FrontendID) Request {
	return Request{
		ID:      f.ID,
		Kind:    f.routeKind(),
		Channel: f.Channel,
		Sender:  sender,
		Args:    f.Args,
	}
}

func (f InboundFrame) routeKind() RouteKind {
	switch f.Kind {
	case FrameInvoke:
		return KindInvoke
	case FrameSend:
		return KindSend
	default:
		return 0
	}
}

// ReplyFrame encodes a router reply.
func ReplyFrame(reply Reply) OutboundFrame {
	ok := reply.OK
	return OutboundFrame{
		Kind:    FrameReply,
		ID:      reply.ID,
		Channel: reply.Channel,
		OK:      &ok,
		Result:  reply.Result,
		Error:   reply.Error,
	}
}

// NavigateResultFrame answers a navigate frame.
func NavigateResultFrame(id string, cancelled bool) OutboundFrame {
	return OutboundFrame{Kind: FrameNavigateResult, ID: id, Cancelled: &cancelled}
}

// EventFrame encodes a host -> front-end event.
func EventFrame(channel string, payload any) OutboundFrame {
	return OutboundFrame{Kind: FrameEvent, Channel: Channel(channel), Args: []any{payload}}
}

// Schema names accepted by WireSchema.
const (
	SchemaInbound          = "inbound"
	SchemaOutbound         = "outbound"
	SchemaMessageBox       = "message-box-options"
	SchemaMessageBoxResult = "message-box-result"
)

// SchemaNames lists the documents WireSchema can produce.
func SchemaNames() []string {
	return []string{SchemaInbound, SchemaOutbound, SchemaMessageBox, SchemaMessageBoxResult}
}

// WireSchema returns the JSON schema for one wire document.
func WireSchema(name string) (*jsonschema.Schema, error) {
	r := new(jsonschema.Reflector)

	var schema *jsonschema.Schema
	switch name {
	case SchemaInbound:
		schema = r.Reflect(&InboundFrame{})
		schema.Title = "hostd inbound frame"
	case SchemaOutbound:
		schema = r.Reflect(&OutboundFrame{})
		schema.Title = "hostd outbound frame"
	case SchemaMessageBox:
		schema = r.Reflect(&entity.MessageBoxOptions{})
		schema.Title = "message-box options"
	case SchemaMessageBoxResult:
		schema = r.Reflect(&entity.MessageBoxResult{})
		schema.Title = "message-box result"
	default:
		return nil, fmt.Errorf("unknown schema %q", name)
	}

	schema.ID = jsonschema.ID("https://github.com/bnema/hostd/" + name + ".schema.json")
	return schema, nil
}
