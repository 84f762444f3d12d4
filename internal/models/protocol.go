package models

// Event is the wire format for domain events published to JetStream.
type Event struct {
	V    int            `msgpack:"v"`
	ID   string         `msgpack:"id"`
	TS   int64          `msgpack:"ts"`
	Type string         `msgpack:"type"`
	Data map[string]any `msgpack:"data"`
}

const EventVersion = 1
