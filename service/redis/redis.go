package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain/keys"
)

// Forever as the expire duration means the key is stored without a TTL
const Forever = time.Duration(0)

var (
	// ErrNotFound is returned when the requested key does not exist
	ErrNotFound = redis.ErrNil

	// ErrGapTime is returned when no pool is available to serve the command
	ErrGapTime = errors.New("redis: in gap time, no pool available")

	// ErrExpireNotExistOrTimeout is returned by Expire when the key does
	// not exist or the timeout could not be set
	ErrExpireNotExistOrTimeout = errors.New("redis: key does not exist or the timeout could not be set")

	// ErrNoTTL is returned by TTL when the key exists but has no
	// associated expire
	ErrNoTTL = errors.New("redis: key has no associated ttl")
)

// MVal is the value type returned by MGet-style commands. Valid is false
// when the key did not exist.
type MVal struct {
	Valid bool
	Value []byte
}

// ZVal is a sorted-set member and its integer score
type ZVal struct {
	Key   string
	Score int
}

// ZFloatVal is a sorted-set member and its float score
type ZFloatVal struct {
	Key   string
	Score float64
}

// ScriptHdl wraps a redigo script
type ScriptHdl struct {
	script   *redis.Script
	keyCount int
}

// NewScript returns a script handle with the given key count and source
func NewScript(keyCount int, src string) *ScriptHdl {
	return &ScriptHdl{
		script:   redis.NewScript(keyCount, src),
		keyCount: keyCount,
	}
}

// Do evaluates the script on the given connection
func (s *ScriptHdl) Do(c redis.Conn, keysAndArgs ...interface{}) (interface{}, error) {
	return s.script.Do(c, keysAndArgs...)
}

func (s *ScriptHdl) prefix(keysAndArgs ...interface{}) string {
	if s.keyCount > 0 && len(keysAndArgs) > 0 {
		if k, ok := keysAndArgs[0].(string); ok {
			return keys.GetPrefix(k)
		}
	}
	return ""
}

// Service is the redis client interface
type Service interface {
	Get(context ctx.Ctx, key string) (val []byte, err error)
	GetSet(context ctx.Ctx, key string, val []byte, expire time.Duration) ([]byte, error)
	GetZip(context ctx.Ctx, key string) (val []byte, err error)
	MGet(context ctx.Ctx, keys []string) ([]MVal, error)
	MGetZip(context ctx.Ctx, keys []string) ([]MVal, error)
	Del(context ctx.Ctx, ks ...string) (int, error)
	Unlink(context ctx.Ctx, ks ...string) (int, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetZip(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetXX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Expire(context ctx.Ctx, key string, ttl time.Duration) error
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	ScanMatch(context ctx.Ctx, cursor int64, match string, count int) (int64, []string, error)
	HSet(context ctx.Ctx, key, field string, val []byte, expire time.Duration) error
	HSetNX(context ctx.Ctx, key, field string, val []byte, expire time.Duration) (bool, error)
	SetStruct(context ctx.Ctx, key string, val interface{}, expire time.Duration) error
	GetStruct(context ctx.Ctx, key string, val interface{}) error
	MSet(context ctx.Ctx, keyVals map[string][]byte, expire time.Duration) error
	HMSet(context ctx.Ctx, key string, fieldVal map[string][]byte, expire time.Duration) error
	HGet(context ctx.Ctx, key, field string) (val []byte, err error)
	HMGet(context ctx.Ctx, key string, fields ...string) ([]MVal, error)
	HGetAll(context ctx.Ctx, key string) (map[string][]byte, error)
	HDel(context ctx.Ctx, key, field string) (int, error)
	LTrim(context ctx.Ctx, key string, start, end int) error
	HLen(context ctx.Ctx, key string) (length int, err error)
	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	HIncrby(context ctx.Ctx, key, field string, val int) (int64, error)
	HScan(context ctx.Ctx, key string, cursor, count int) (map[string][]byte, int, error)
	ZAddXX(context ctx.Ctx, key string, memscore map[string]int) error
	ZAddNXFloat(context ctx.Ctx, key string, memscore map[string]float64) error
	ZAdd(context ctx.Ctx, key string, memscore map[string]int) error
	ZAddFloat(context ctx.Ctx, key string, memSco map[string]float64) error
	ZScore(context ctx.Ctx, key, member string) (int, error)
	ZScoreFloat(context ctx.Ctx, key, member string) (float64, error)
	ZIncrby(context ctx.Ctx, key string, member string, val int) (int, error)
	ZIncrbyFloat(context ctx.Ctx, key string, member string, val float64) (float64, error)
	SScan(context ctx.Ctx, key string, cursor, count int) ([]string, int, error)
	ZScan(context ctx.Ctx, key string, cursor, limit int) (map[string]int, int, error)
	ZCard(context ctx.Ctx, key string) (count int, err error)
	ZRevrange(context ctx.Ctx, key string, offset, count int) ([]string, error)
	ZRange(context ctx.Ctx, key string, offset, count int) ([]string, error)
	ZCount(context ctx.Ctx, key, minScore, maxScore string) (int, error)
	ZRangeByScoreWithScore(context ctx.Ctx, key, minScore, maxScore string) ([]ZVal, error)
	ZRevrangeScore(context ctx.Ctx, key string, offset, count int) ([]ZVal, error)
	ZRevrangeFloatScore(context ctx.Ctx, key string, offset, count int) ([]ZFloatVal, error)
	ZRevrangeByScoreWithScore(context ctx.Ctx, key, minScore, maxScore string) ([]ZVal, error)
	ZRevrangeByScoreWithFloatScore(context ctx.Ctx, key, minScore, maxScore string) ([]ZFloatVal, error)
	ZRem(context ctx.Ctx, key string, members ...string) error
	ZRemRangeByScore(context ctx.Ctx, key string, minScore, maxScore int) (int, error)
	ZRemRangeByRank(context ctx.Ctx, key string, start, stop int) (int, error)
	ZRevRank(context ctx.Ctx, key, member string) (int, error)
	ZPopMin(context ctx.Ctx, key string, count int) ([]ZFloatVal, error)
	ZUnionStore(context ctx.Ctx, paris []Pair, dest string) error
	LPush(context ctx.Ctx, key string, val []byte) error
	LRange(context ctx.Ctx, key string, offset, count int) (val [][]byte, err error)
	RPush(context ctx.Ctx, key string, val []byte) (int, error)
	LPop(context ctx.Ctx, key string) ([]byte, error)
	RPop(context ctx.Ctx, key string) ([]byte, error)
	RandomKey(context ctx.Ctx) ([]byte, error)
	Type(context ctx.Ctx, key string) ([]byte, error)
	Strlen(context ctx.Ctx, key string) (int, error)
	LSet(context ctx.Ctx, key string, index int, val []byte) error
	LIndex(context ctx.Ctx, key string, index int64) ([]byte, error)
	LLen(context ctx.Ctx, key string) (length int, err error)
	LInsert(context ctx.Ctx, key string, before, val []byte) error
	SAdd(context ctx.Ctx, key string, member ...string) error
	SAddFullInfo(context ctx.Ctx, key string, member ...string) (int64, error)
	SRem(context ctx.Ctx, key string, member ...string) error
	SMembers(context ctx.Ctx, key string) ([]string, error)
	SIsMember(context ctx.Ctx, key, member string) (bool, error)
	SCard(context ctx.Ctx, key string) (int, error)
	Rename(context ctx.Ctx, oldKey, newKey string) error
	Exists(context ctx.Ctx, key string) (bool, error)
	TTL(context ctx.Ctx, key string) (int, error)
	SPop(context ctx.Ctx, key string) (string, error)
	SMPop(context ctx.Ctx, key string, count int) ([]string, error)
	PFAdd(context ctx.Ctx, key string, members ...string) (int, error)
	ScriptDo(context ctx.Ctx, hdl *ScriptHdl, keysAndArgs ...interface{}) (interface{}, error)
	GetConn() (redis.Conn, error)
	Name() string
}
