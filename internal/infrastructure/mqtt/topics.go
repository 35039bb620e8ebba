package mqtt

import "fmt"

// Topic layout for obschat.
//
// The chat gateway (external process owning the chat-platform connection)
// publishes parsed chat commands to the command topic. The bridge consumes
// them and publishes acknowledgements to the ack topic. The status topic
// carries online/offline state for the daemon, including the LWT payload.
const (
	// TopicPrefix is the base for all obschat topics.
	TopicPrefix = "obschat"
)

// Topics provides builders for obschat MQTT topics.
// Using these helpers keeps topic naming consistent across the codebase
// and the chat gateway.
type Topics struct{}

// ChatCommand returns the topic chat commands are published to.
//
// Topic: obschat/chat/command
func (Topics) ChatCommand() string {
	return fmt.Sprintf("%s/chat/command", TopicPrefix)
}

// ChatAck returns the topic command acknowledgements are published to.
// The payload carries the command id; there is one ack per command.
//
// Topic: obschat/chat/ack
func (Topics) ChatAck() string {
	return fmt.Sprintf("%s/chat/ack", TopicPrefix)
}

// SystemStatus returns the daemon status topic (retained, also used as LWT).
//
// Topic: obschat/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/system/status", TopicPrefix)
}
