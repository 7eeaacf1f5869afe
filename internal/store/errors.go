package store

import "errors"

// ErrValkeyUnavailable はValkeyへのアクセス失敗を表す。
var ErrValkeyUnavailable = errors.New("valkey unavailable")

// ErrKeyNotFound はキーが存在しないことを表す。
var ErrKeyNotFound = errors.New("key not found")
