package stream

import "github.com/povarna/generative-ai-agents/vent-agent/internal/stream/redis"

type StreamConfig struct {
	Provider    string // redis, kafka, sqs, etc
	RedisConfig *redis.RedisStreamConfig
}
