package cache

import "time"

// ingestHour は日次取り込みバッチが走る時刻（日本時間）です。
// キャッシュはこの時刻に必ず陳腐化するため、TTLの上限として使います。
const ingestHour = 8

// jst は日本時間のロケーションを返します。tzdataのないコンテナでは
// LoadLocationが失敗するため、固定オフセットにフォールバックします。
// 日本にサマータイムはないので両者は常に等価です。
func jst() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return time.FixedZone("JST", 9*60*60)
	}
	return loc
}

// TimeUntilNext8AM は次の午前8時（日本時間）までの期間を返します。
func TimeUntilNext8AM() time.Duration {
	now := time.Now().In(jst())

	next := time.Date(now.Year(), now.Month(), now.Day(), ingestHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}
