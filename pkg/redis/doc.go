// Package redis connects to the Redis server used to keep signed-in tokens
// across runs of the terminal client.
//
// Connect parses a redis:// URL and pings the server with retries; the
// connect phase as a whole is bounded by Config.ConnectTimeout.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
// Config fields are populated from REDIS_* environment variables through
// pkg/config. An empty REDIS_URL means Redis is not used; Connect returns
// ErrEmptyConnectionURL in that case.
//
// Errors wrap the go-redis cause with errors.Join, so both the sentinel and
// the cause can be matched with errors.Is.
package redis
