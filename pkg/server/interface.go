/*
Package server implements msgpack IPC for phone number conversion.

Clients write a stream of msgpack maps to stdin and read one response per
request from stdout. The server announces itself with a status map once it
is ready to accept requests:

	{"status": "ready"}

A conversion request carries raw phone numbers; punctuation is ignored:

	{"id": "req_001", "n": ["(2)255.63", "4225563"]}

The response lists every cleaned number in ascending order with its renderings,
the total rendering count and the time taken in microseconds:

	{"id": "req_001", "r": [{"n": "225563", "w": ["CALL-ME"]}, {"n": "4225563", "w": ["4-CALL-ME"]}], "c": 2, "t": 85}

Dictionary statistics are available through the stats action:

	{"id": "req_002", "action": "stats"}

Requests without an id are answered with a generated one. Rejected requests
get an ErrorResponse with an HTTP-like code.
*/
package server

const (
	// ActionConvert is the default action and may be omitted.
	ActionConvert = "convert"
	// ActionStats reports dictionary statistics.
	ActionStats = "stats"
)

// Request is any message a client can send.
type Request struct {
	ID      string   `msgpack:"id"`
	Action  string   `msgpack:"action,omitempty"`
	Numbers []string `msgpack:"n,omitempty"`
}

// NumberResult holds the renderings of one cleaned number.
type NumberResult struct {
	Number     string   `msgpack:"n"`
	Renderings []string `msgpack:"w"`
}

// ConvertResponse answers a conversion request.
type ConvertResponse struct {
	ID        string         `msgpack:"id"`
	Results   []NumberResult `msgpack:"r"`
	Count     int            `msgpack:"c"`
	TimeTaken int64          `msgpack:"t"`
}

// StatsResponse answers a stats request.
type StatsResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats"`
}

// ErrorResponse holds basic error information for rejected requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
