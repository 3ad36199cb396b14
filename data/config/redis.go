package config

import (
	"time"

	"github.com/spf13/viper"
)

// Redis redis config struct
type Redis struct {
	Addr         string        `json:"addr" yaml:"addr"`
	Username     string        `json:"username" yaml:"username"`
	Password     string        `json:"password" yaml:"password"`
	Db           int           `json:"db" yaml:"db"`
	ReadTimeout  time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`
	DialTimeout  time.Duration `json:"dial_timeout" yaml:"dial_timeout"`

	// CacheTTL bounds how long cached project lists live.
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`

	// BreakerMaxFailures consecutive redis errors open the cache breaker
	// for BreakerTimeout.
	BreakerMaxFailures uint32        `json:"breaker_max_failures" yaml:"breaker_max_failures"`
	BreakerTimeout     time.Duration `json:"breaker_timeout" yaml:"breaker_timeout"`
}

// getRedisConfigs reads Redis configurations
func getRedisConfigs(v *viper.Viper) *Redis {
	ttl := 10 * time.Minute
	if v.IsSet("data.redis.cache_ttl") {
		ttl = v.GetDuration("data.redis.cache_ttl")
	}
	maxFailures := uint32(5)
	if v.IsSet("data.redis.breaker_max_failures") {
		maxFailures = v.GetUint32("data.redis.breaker_max_failures")
	}
	breakerTimeout := 30 * time.Second
	if v.IsSet("data.redis.breaker_timeout") {
		breakerTimeout = v.GetDuration("data.redis.breaker_timeout")
	}
	return &Redis{
		Addr:         v.GetString("data.redis.addr"),
		Username:     v.GetString("data.redis.username"),
		Password:     v.GetString("data.redis.password"),
		Db:           v.GetInt("data.redis.db"),
		ReadTimeout:  v.GetDuration("data.redis.read_timeout"),
		WriteTimeout: v.GetDuration("data.redis.write_timeout"),
		DialTimeout:  v.GetDuration("data.redis.dial_timeout"),
		CacheTTL:     ttl,

		BreakerMaxFailures: maxFailures,
		BreakerTimeout:     breakerTimeout,
	}
}
