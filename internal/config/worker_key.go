package config

type WorkerKeyStruct struct {
	ActivityEventsQueue  string
	PersistAttemptsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ActivityEventsQueue:  "activity_events_queue",
	PersistAttemptsQueue: "persist_attempts_queue",
}
