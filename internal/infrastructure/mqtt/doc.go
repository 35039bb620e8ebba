// Package mqtt provides MQTT client connectivity for obschat.
//
// MQTT is the seam between the chat platform and the control core: a separate
// chat gateway process owns the chat connection and publishes parsed commands
// to the broker; the obschat daemon subscribes and acts on them. The broker
// decouples chat-platform churn from OBS control.
//
//	chat gateway → MQTT broker → obschat bridge → OBS
//
// The package manages connection with auto-reconnect, QoS-aware publishing,
// subscription restoration after reconnect, and a Last Will and Testament on
// the status topic for offline detection.
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	err = client.Subscribe(mqtt.Topics{}.ChatCommand(), 1,
//	    func(topic string, payload []byte) error {
//	        // parse and enqueue the command
//	        return nil
//	    })
package mqtt
