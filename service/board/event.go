package board

// DrawingEvent is one whiteboard command. Coordinates are normalized
// fractions of the canvas size, so participants with different viewports
// render the same picture. An event with Clear set is the sentinel that
// wipes the room's history; all other fields are then ignored.
//
// Tools and coordinates are not validated here: the relay stores and
// forwards whatever the client sent, and rendering is the client's problem.
type DrawingEvent struct {
	Tool      string  `json:"tool,omitempty"`
	Color     string  `json:"color,omitempty"`
	LineWidth float64 `json:"lineWidth,omitempty"`
	X0        float64 `json:"x0,omitempty"`
	Y0        float64 `json:"y0,omitempty"`
	X1        float64 `json:"x1,omitempty"`
	Y1        float64 `json:"y1,omitempty"`
	Clear     bool    `json:"clear,omitempty"`
}

// ChatPayload is a room chat message. Chat is broadcast-only and never
// persisted; a restart or reconnect loses it.
type ChatPayload struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// HistoryPayload is the private join reply: the room's replayable drawing
// history plus the member count at the moment of joining.
type HistoryPayload struct {
	Events []DrawingEvent `json:"events"`
	Count  int            `json:"count"`
}
