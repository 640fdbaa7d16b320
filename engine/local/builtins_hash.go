package local

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"

	"github.com/rulego/colexpr/types"
)

// 多列哈希的初始种子
const hashSeed = 42

// 哈希函数
func init() {
	register("crc32", func(e *Engine, args []interface{}) (interface{}, error) {
		b, err := toBytes(args[0])
		if err != nil {
			return nil, err
		}
		return int64(crc32.ChecksumIEEE(b)), nil
	})
	register("md5", digest(md5.New))
	register("sha1", digest(sha1.New))
	register("sha2", func(e *Engine, args []interface{}) (interface{}, error) {
		bits, err := toInt(args[1])
		if err != nil {
			return nil, err
		}
		var h func() hash.Hash
		switch bits {
		case 0, 256:
			h = sha256.New
		case 224:
			h = sha256.New224
		case 384:
			h = sha512.New384
		case 512:
			h = sha512.New
		default:
			return nil, nil
		}
		return digest(h)(e, args[:1])
	})
	// 空值不参与哈希，种子沿列传递
	registerNullable("hash", func(e *Engine, args []interface{}) (interface{}, error) {
		seed := uint32(hashSeed)
		for _, a := range args {
			if a == nil {
				continue
			}
			b, err := hashBytes(a)
			if err != nil {
				return nil, err
			}
			seed = murmur3.Sum32WithSeed(b, seed)
		}
		return int64(int32(seed)), nil
	})
	registerNullable("xxhash64", func(e *Engine, args []interface{}) (interface{}, error) {
		seed := uint64(hashSeed)
		for _, a := range args {
			if a == nil {
				continue
			}
			b, err := hashBytes(a)
			if err != nil {
				return nil, err
			}
			d := xxhash.NewWithSeed(seed)
			_, _ = d.Write(b)
			seed = d.Sum64()
		}
		return int64(seed), nil
	})
}

func digest(newHash func() hash.Hash) builtinFunc {
	return func(e *Engine, args []interface{}) (interface{}, error) {
		b, err := toBytes(args[0])
		if err != nil {
			return nil, err
		}
		h := newHash()
		h.Write(b)
		return hex.EncodeToString(h.Sum(nil)), nil
	}
}

// hashBytes 值的定长或UTF-8字节表示
func hashBytes(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case bool:
		return binary.LittleEndian.AppendUint32(nil, uint32(boolRank(x))), nil
	case int64:
		return binary.LittleEndian.AppendUint64(nil, uint64(x)), nil
	case float64:
		if x == 0 {
			x = 0 // -0.0 与 0.0 哈希相同
		}
		return binary.LittleEndian.AppendUint64(nil, math.Float64bits(x)), nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case time.Time:
		return binary.LittleEndian.AppendUint64(nil, uint64(x.UnixMicro())), nil
	case types.Date:
		days := x.Time().Unix() / 86400
		return binary.LittleEndian.AppendUint32(nil, uint32(days)), nil
	case []interface{}, map[string]interface{}:
		s, err := toText(x)
		return []byte(s), err
	}
	return nil, fmt.Errorf("cannot hash %T", v)
}
