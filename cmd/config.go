package main

import "time"

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	PresenceBufferSize int           `env:"PRESENCE_BUFFER_SIZE,default=256"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HeartbeatInterval  time.Duration `env:"HEARTBEAT_INTERVAL,default=5s"`
	DebugPort          int           `env:"DEBUG_PORT,default=8090"`
	DemoScenario       bool          `env:"DEMO_SCENARIO,default=false"`

	// Local approximation of the platform per-minute call ceiling.
	RateWindow         time.Duration `env:"RATE_WINDOW,default=1m"`
	RateWarnThreshold  int           `env:"RATE_WARN_THRESHOLD,default=20"`
	RateCrashThreshold int           `env:"RATE_CRASH_THRESHOLD,default=50"`
}
