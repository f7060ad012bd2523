package domain

// Config is the whole persisted configuration, loaded once per change and
// held for the process lifetime. Sessions and the target are read-only
// during a run.
type Config struct {
	Sessions      []Session
	Target        CheckInTarget
	Schedule      ScheduleConfig
	RemoteBaseURL string
	PushToken     string
	SystemNotify  bool
	Debug         bool
}
