// Package dto はsymbollist HTTP APIのデータ転送オブジェクトを定義します。
package dto

// SymbolItem は銘柄一覧レスポンスの1件分です。
// クライアントに必要な公開フィールドのみを持ちます。
type SymbolItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
