// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint   string  `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint   string  `envconfig:"otel_http_endpoint"`
	TracingEnabled     bool    `envconfig:"tracing_enabled" default:"true"`
	TracingSampleRatio float64 `envconfig:"tracing_sample_ratio" default:"1"`

	KratosAdminURL string `envconfig:"kratos_admin_url"`
	WebhookAPIKey  string `envconfig:"webhook_api_key"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"72h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port           int      `envconfig:"port" default:"8080"`
	AllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
	DBTxTimeout       time.Duration `envconfig:"db_tx_timeout" default:"60s"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	OIDCJWKSURL           string   `envconfig:"oidc_jwks_url"`
	OIDCAllowedSubjects   []string `envconfig:"oidc_allowed_subjects"`
	OIDCRequiredScope     string   `envconfig:"oidc_required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	QueueBackend      string        `envconfig:"queue_backend" default:"postgres"`
	VisibilityTimeout time.Duration `envconfig:"queue_visibility_timeout" default:"5m"`
	PollInterval      time.Duration `envconfig:"queue_poll_interval" default:"2s"`

	RedisAddr     string `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	KafkaEnabled bool     `envconfig:"kafka_enabled" default:"false"`
	KafkaBrokers []string `envconfig:"kafka_brokers" default:"localhost:9092"`
	KafkaTopic   string   `envconfig:"kafka_topic" default:"content.output.transitions"`

	WorkerConcurrency   int           `envconfig:"worker_concurrency" default:"4"`
	WorkerPort          int           `envconfig:"worker_port" default:"8081"`
	MaxPipelineDuration time.Duration `envconfig:"max_pipeline_duration" default:"20m"`
	StaleAfter          time.Duration `envconfig:"stale_processing_after" default:"45m"`
	ReapInterval        time.Duration `envconfig:"stale_reap_interval" default:"1m"`

	RetryMaxAttempts    int           `envconfig:"retry_max_attempts" default:"0"`
	RetryInitialBackoff time.Duration `envconfig:"retry_initial_backoff" default:"0s"`
	RetryMaxBackoff     time.Duration `envconfig:"retry_max_backoff" default:"0s"`

	CohereAPIKey          string        `envconfig:"cohere_api_key"`
	CohereBaseURL         string        `envconfig:"cohere_base_url"`
	CohereModel           string        `envconfig:"cohere_model" default:"command-r-plus"`
	TextGenerationTimeout time.Duration `envconfig:"text_generation_timeout" default:"90s"`

	SpeechURL     string        `envconfig:"speech_url" default:"https://api.elevenlabs.io"`
	SpeechAPIKey  string        `envconfig:"speech_api_key"`
	SpeechModel   string        `envconfig:"speech_model" default:"eleven_multilingual_v2"`
	SpeechTimeout time.Duration `envconfig:"speech_timeout" default:"120s"`
	NarratorVoice string        `envconfig:"narrator_voice_id"`
	GuestVoice    string        `envconfig:"guest_voice_id"`

	AvatarURL          string        `envconfig:"avatar_url"`
	AvatarAPIKey       string        `envconfig:"avatar_api_key"`
	AvatarTimeout      time.Duration `envconfig:"avatar_timeout" default:"30s"`
	AvatarPollInterval time.Duration `envconfig:"avatar_poll_interval" default:"10s"`
	DefaultAvatarID    string        `envconfig:"default_avatar_id"`

	CaptionsURL     string        `envconfig:"captions_url"`
	CaptionsAPIKey  string        `envconfig:"captions_api_key"`
	CaptionsTimeout time.Duration `envconfig:"captions_timeout" default:"300s"`
	CaptionsStyle   string        `envconfig:"captions_style" default:"karaoke"`

	S3Bucket       string `envconfig:"s3_bucket" default:"content-media"`
	S3Region       string `envconfig:"s3_region"`
	S3Endpoint     string `envconfig:"s3_endpoint"`
	S3UsePathStyle bool   `envconfig:"s3_use_path_style" default:"false"`
	S3PublicURL    string `envconfig:"s3_public_url"`

	FFmpegWorkDir string `envconfig:"ffmpeg_work_dir" default:"/tmp/content-service"`
	BumperPath    string `envconfig:"video_bumper_path"`
	MusicPath     string `envconfig:"video_music_path"`
}
