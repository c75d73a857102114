// Package cache はリポジトリインターフェースのキャッシュ実装を提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"levels_backend/internal/feature/candles/domain/entity"
	"levels_backend/internal/feature/candles/usecase"
)

// CachingCandleRepository はCandleRepositoryをRedisキャッシュでデコレートします。
// 下層のリポジトリには手を入れず、透過的にキャッシュを挟みます。
type CachingCandleRepository struct {
	inner     usecase.CandleRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingCandleRepository はCandleRepositoryをRedisキャッシュでラップします。
// ttlが0以下なら5分、namespaceが空なら"candles"を使用します。
func NewCachingCandleRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CandleRepository, namespace string) *CachingCandleRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "candles"
	}
	return &CachingCandleRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// UpsertBatch はロウソク足を一括で挿入・更新し、関連するキャッシュエントリを無効化します。
func (c *CachingCandleRepository) UpsertBatch(ctx context.Context, candles []entity.Candle) error {
	// まず下層リポジトリ（MySQL）へ書き込む
	if err := c.inner.UpsertBatch(ctx, candles); err != nil {
		return err
	}
	// Redis未設定または書き込み0件なら無効化は不要
	if c.rdb == nil || len(candles) == 0 {
		return nil
	}

	// symbol+intervalごとのプレフィックスで影響範囲のキーを無効化
	prefixes := make(map[string]struct{}, 1)
	for _, cd := range candles {
		prefixes[c.cacheKeyPrefix(cd.Symbol, cd.Interval)] = struct{}{}
	}
	for prefix := range prefixes {
		_ = c.deleteByPattern(ctx, prefix+"*") // ベストエフォート。削除失敗でupsertは失敗させない
	}
	return nil
}

// FindRange は指定範囲のロウソク足を取得します。まずキャッシュを確認し、
// ミス時はデータベースへフォールバックして結果をキャッシュに格納します。
func (c *CachingCandleRepository) FindRange(ctx context.Context, symbol, interval string, from, to time.Time) ([]entity.Candle, error) {
	// Redis未設定ならキャッシュをバイパス
	if c.rdb == nil {
		return c.inner.FindRange(ctx, symbol, interval, from, to)
	}

	key := c.cacheKey(symbol, interval, from, to)

	// 1) キャッシュ確認
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Candle
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたエントリは削除しておく
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) データベースへフォールバック
	out, err := c.inner.FindRange(ctx, symbol, interval, from, to)
	if err != nil {
		return nil, err
	}

	// 3) キャッシュへ格納（ベストエフォート）
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey は範囲クエリ単位のキャッシュキーを生成します。日足データは
// 日付単位でしか変化しないため、境界を日付で整形しておくと同日内の
// 時刻差でキーが散らばりません。
func (c *CachingCandleRepository) cacheKey(symbol, interval string, from, to time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s",
		c.namespace,
		safe(symbol),
		safe(interval),
		from.Format("2006-01-02"),
		to.Format("2006-01-02"),
	)
}

// cacheKeyPrefix は無効化用のキープレフィックスを生成します。
func (c *CachingCandleRepository) cacheKeyPrefix(symbol, interval string) string {
	return fmt.Sprintf("%s:%s:%s:",
		c.namespace,
		safe(symbol),
		safe(interval),
	)
}

// deleteByPattern はSCANでパターンに一致する全キーを削除します。
// KEYSと違いサーバーをブロックしません。
func (c *CachingCandleRepository) deleteByPattern(ctx context.Context, pattern string) error {
	for cursor := uint64(0); ; {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// safe はRedisキーの区切り文字と衝突する文字をエスケープします。
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
