package main

import "time"

type Config struct {
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,required=true"`
	SessionTTL           time.Duration `env:"SESSION_TTL"` // zero keeps offline sessions forever
	MediaTokenSecret     string        `env:"MEDIA_TOKEN_SECRET,required=true"`
	MediaTokenDuration   time.Duration `env:"MEDIA_TOKEN_DURATION,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	UploadDir            string        `env:"UPLOAD_DIR,required=true"`
	PublicBaseURL        string        `env:"PUBLIC_BASE_URL,required=true"`
	DefaultPicture       string        `env:"DEFAULT_PICTURE,default=https://avatar.iran.liara.run/public"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	Host                 string        `env:"HOST,default=localhost"`
	Port                 int           `env:"PORT,default=8000"`
	DebugPort            int           `env:"DEBUG_PORT,default=8090"`
}
