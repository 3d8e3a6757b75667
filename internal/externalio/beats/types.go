package beats

// Subset of the lumberjack client used here
type eventSink interface {
	Send(events []interface{}) (int, error)
	Close() error
}

// Forwards decoded records to a beats (lumberjack v2) server
type OutModule struct {
	sink eventSink
}
