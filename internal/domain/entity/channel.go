// Package entity contains the core business objects of the project.
package entity

// Channel identifies a delivery mechanism for notifications.
type Channel string

const (
	// ChannelPush delivers via FCM multicast to mobile device tokens.
	ChannelPush Channel = "push"
	// ChannelInApp persists a notification record readable from the inbox API.
	ChannelInApp Channel = "inapp"
	// ChannelWebPush delivers via FCM to browser-registered web tokens.
	ChannelWebPush Channel = "webpush"
)

// ChannelOrder is the fixed order in which channels are attempted during a
// dispatch. Channels are independent; a failure on one never blocks another.
var ChannelOrder = []Channel{ChannelPush, ChannelInApp, ChannelWebPush}

// Valid reports whether the channel is one of the known delivery channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelPush, ChannelInApp, ChannelWebPush:
		return true
	}

	return false
}

// Addressable reports whether the channel delivers to registered addresses.
// The in-app channel targets the recipient directly and needs no address.
func (c Channel) Addressable() bool {
	return c != ChannelInApp
}
