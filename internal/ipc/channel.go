// Package ipc routes named front-end messages to the host's capability bridges.
//
// The dispatch table is an immutable map from Channel to Route, fixed when the
// Router is built. Each Route is either fire-and-forget (Send) or
// request/response (Invoke); the kind travels with the route value.
package ipc

import "github.com/bnema/hostd/internal/application/usecase"

// Channel names a front-end -> host message.
type Channel string

const (
	ChannelNewWindow   Channel = "new-window"
	ChannelWindowReady Channel = "window-ready"
	ChannelMessageBox  Channel = "message-box"
	ChannelGetPath     Channel = "get-path"
	ChannelGetSettings Channel = "get-settings"
	ChannelSetSettings Channel = "set-settings"

	// ChannelFileDropped is host -> front-end only; it never appears in the route table.
	ChannelFileDropped Channel = usecase.FileDroppedEvent
)

func (c Channel) String() string {
	return string(c)
}

// RouteKind distinguishes fire-and-forget routes from request/response routes.
type RouteKind int

const (
	KindSend RouteKind = iota + 1
	KindInvoke
)

func (k RouteKind) String() string {
	switch k {
	case KindSend:
		return "send"
	case KindInvoke:
		return "invoke"
	default:
		return "unknown"
	}
}
