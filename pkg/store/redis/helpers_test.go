package redis

import "mytime/pkg/config"

func configFor(addr string) config.RedisConfig {
	return config.RedisConfig{Enabled: true, Addr: addr}
}
