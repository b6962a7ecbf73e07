package inventory

import "errors"

var (
	// ErrUnsupportedFormat 表示请求了未知的序列化格式。
	ErrUnsupportedFormat = errors.New("inventory: unsupported format")

	// ErrMarshalFailed 表示清单序列化失败。
	ErrMarshalFailed = errors.New("inventory: marshal failed")

	// ErrLoadFailed 表示清单解析失败。
	ErrLoadFailed = errors.New("inventory: load failed")
)
