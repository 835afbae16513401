package redisrepo

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	CONTENT_KEY         = "content:%s:%s" // <queryName>:<paramsJSON>
	CONTENT_KEY_PATTERN = "content:*"
	RATE_LIMIT_KEY      = "ratelimit:%s:%d" // <clientKey>:<windowStartUnix>
)

// ContentKey derives a cache key from a query name and its parameters.
// encoding/json sorts map keys, so equal parameter sets give equal keys.
func ContentKey(queryName string, params map[string]any) string {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		paramsJSON = []byte(fmt.Sprint(params))
	}
	return fmt.Sprintf(CONTENT_KEY, queryName, paramsJSON)
}

func RateLimitKey(key string, windowStart time.Time) string {
	return fmt.Sprintf(RATE_LIMIT_KEY, key, windowStart.Unix())
}
